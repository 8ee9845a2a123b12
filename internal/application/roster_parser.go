package application

import (
	"strings"

	"github.com/jladao109/wedding-rsvp-api/internal/domain"
)

// Sheet column layout: A=party id, B=names, C=zips, D=seats reserved,
// E..K=saved RSVP fields.
const (
	colPartyID = iota
	colNames
	colZips
	colSeatsReserved
	colAttending
	colHeadcount
	colAttendees
	colMeals
	colAges
	colEmail
	colPhone
)

// ListDelimiter separates entries inside the names and zips cells.
const ListDelimiter = ";"

// RosterParser turns the sheet's semi-structured cell text into party
// records. Parsing is pure and never fails: malformed tokens collapse
// to empty values and are filtered out.
type RosterParser struct{}

// NewRosterParser creates a new roster parser.
func NewRosterParser() *RosterParser {
	return &RosterParser{}
}

// ParseList splits delimited cell text into trimmed, non-empty tokens,
// preserving their order. An empty cell yields an empty slice.
func (p *RosterParser) ParseList(cell, delimiter string) []string {
	tokens := make([]string, 0)
	for _, piece := range strings.Split(strings.TrimSpace(cell), delimiter) {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			tokens = append(tokens, piece)
		}
	}
	return tokens
}

// ParseName parses a "Last, First, Suffix" token into a Person. Missing
// parts default to empty strings; the suffix is optional. Display is
// "First Last" with ", Suffix" appended when a suffix is present.
func (p *RosterParser) ParseName(token string) domain.Person {
	parts := make([]string, 0, 3)
	for _, piece := range strings.Split(token, ",") {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			parts = append(parts, piece)
		}
	}

	person := domain.Person{}
	if len(parts) > 0 {
		person.LastName = parts[0]
	}
	if len(parts) > 1 {
		person.FirstName = parts[1]
	}
	if len(parts) > 2 {
		person.Suffix = parts[2]
	}

	named := make([]string, 0, 2)
	for _, part := range []string{person.FirstName, person.LastName} {
		if part != "" {
			named = append(named, part)
		}
	}
	person.Display = strings.Join(named, " ")
	if person.Suffix != "" {
		person.Display += ", " + person.Suffix
	}
	person.Display = strings.TrimSpace(person.Display)

	return person
}

// ParseParty parses one roster row into its identified party. Guests
// with neither a last nor a first name are dropped; guest order follows
// the names cell. Zip entries are whitespace-stripped but otherwise
// untouched, so leading zeros and extended formats survive.
func (p *RosterParser) ParseParty(row domain.RawRow, rowNumber int) domain.Party {
	party := domain.Party{
		PartyID:       strings.TrimSpace(row.Cell(colPartyID)),
		RowNumber:     rowNumber,
		Guests:        make([]domain.Person, 0),
		SeatsReserved: strings.TrimSpace(row.Cell(colSeatsReserved)),
	}

	for _, token := range p.ParseList(row.Cell(colNames), ListDelimiter) {
		person := p.ParseName(token)
		if person.LastName == "" && person.FirstName == "" {
			continue
		}
		party.Guests = append(party.Guests, person)
	}

	zips := p.ParseList(row.Cell(colZips), ListDelimiter)
	party.Zips = make([]string, 0, len(zips))
	for _, zip := range zips {
		party.Zips = append(party.Zips, stripSpace(zip))
	}

	if saved := p.parseSavedRsvp(row); !saved.IsEmpty() {
		party.SavedRsvp = &saved
	}

	return party
}

func (p *RosterParser) parseSavedRsvp(row domain.RawRow) domain.RsvpRecord {
	return domain.RsvpRecord{
		Attending: strings.TrimSpace(row.Cell(colAttending)),
		Headcount: strings.TrimSpace(row.Cell(colHeadcount)),
		Attendees: strings.TrimSpace(row.Cell(colAttendees)),
		Meals:     strings.TrimSpace(row.Cell(colMeals)),
		Ages:      strings.TrimSpace(row.Cell(colAges)),
		Email:     strings.TrimSpace(row.Cell(colEmail)),
		Phone:     strings.TrimSpace(row.Cell(colPhone)),
	}
}

// stripSpace removes every whitespace run from a zip entry.
func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// normalizeLower trims and lowercases a value for matching.
func normalizeLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
