package domain

import "context"

// FirstDataRow is the sheet row holding the first party. Row 1 is the
// header row, so a raw data index i lives at sheet row i + FirstDataRow.
const FirstDataRow = 2

// Person represents one named guest parsed from a roster names cell.
type Person struct {
	LastName  string `json:"lastName"`
	FirstName string `json:"firstName"`
	Suffix    string `json:"suffix,omitempty"`
	// Display renders as "First Last" with ", Suffix" appended when a
	// suffix is present.
	Display string `json:"display"`
}

// RsvpRecord holds the seven write-back fields of one party's RSVP,
// keyed by their fixed sheet columns E through K. All fields are
// free text; values are trimmed but never coerced.
type RsvpRecord struct {
	Attending string `json:"E"`
	Headcount string `json:"F"`
	Attendees string `json:"G"`
	Meals     string `json:"H"`
	Ages      string `json:"I"`
	Email     string `json:"J"`
	Phone     string `json:"K"`
}

// IsEmpty reports whether every field of the record is blank.
func (r RsvpRecord) IsEmpty() bool {
	return r.Attending == "" && r.Headcount == "" && r.Attendees == "" &&
		r.Meals == "" && r.Ages == "" && r.Email == "" && r.Phone == ""
}

// Party groups the guests sharing one roster row and one RSVP.
type Party struct {
	PartyID string `json:"partyId,omitempty"`
	// RowNumber is the party's 1-based position in the backing sheet
	// (first data row is 2). It is fixed at parse time and is the only
	// stable identity a submission can address.
	RowNumber     int         `json:"rowNumber"`
	Guests        []Person    `json:"guests"`
	Zips          []string    `json:"-"`
	SeatsReserved string      `json:"seatsReserved,omitempty"`
	SavedRsvp     *RsvpRecord `json:"savedRsvp,omitempty"`
}

// MatchQuery is a normalized guest lookup: a lowercased last name plus
// an optional whitespace-stripped zip. An empty Zip means "no filter",
// never "match blank".
type MatchQuery struct {
	LastNameLower string
	Zip           string
}

// RawRow is one data row read from the backing sheet, columns A..K.
// Rows may be sparse; use Cell to read positions safely.
type RawRow []string

// Cell returns the cell at the given zero-based column, or "" when the
// row is shorter than expected.
func (r RawRow) Cell(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// CellUpdate addresses one cell write in A1 notation, e.g. "Guests!E5".
type CellUpdate struct {
	Range string
	Value string
}

// RosterStore defines the operations against the shared guest sheet.
type RosterStore interface {
	// ReadRoster returns every data row of the roster in sheet order.
	ReadRoster(ctx context.Context) ([]RawRow, error)
	// ApplyUpdates writes the given cells in one batched call. The
	// batch is all-or-nothing; partial application is not an outcome.
	ApplyUpdates(ctx context.Context, updates []CellUpdate) error
}
