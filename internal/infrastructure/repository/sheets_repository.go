package repository

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/jladao109/wedding-rsvp-api/internal/domain"
)

// rosterColumns spans A through K: id, names, zips, seats, then the
// seven RSVP fields.
const rosterColumns = 11

type sheetsRosterStore struct {
	svc           *sheets.Service
	spreadsheetID string
	tab           string
}

// NewSheetsRosterStore creates a roster store backed by one tab of a
// Google spreadsheet, authenticated with a service-account credentials
// JSON blob.
func NewSheetsRosterStore(ctx context.Context, credentialsJSON []byte, spreadsheetID, tab string) (domain.RosterStore, error) {
	creds, err := google.CredentialsFromJSON(ctx, credentialsJSON, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parsing Google credentials: %w", err)
	}

	svc, err := sheets.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("creating Sheets service: %w", err)
	}

	return &sheetsRosterStore{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		tab:           tab,
	}, nil
}

// ReadRoster fetches every data row of the roster tab in sheet order.
// The API returns ragged rows; each is padded to the full column span
// so missing cells read as empty strings.
func (s *sheetsRosterStore) ReadRoster(ctx context.Context) ([]domain.RawRow, error) {
	readRange := fmt.Sprintf("%s!A%d:K", s.tab, domain.FirstDataRow)

	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("reading range %s: %w", readRange, err)
	}

	rows := make([]domain.RawRow, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make(domain.RawRow, rosterColumns)
		for i := 0; i < rosterColumns && i < len(raw); i++ {
			switch v := raw[i].(type) {
			case string:
				row[i] = v
			case nil:
			default:
				row[i] = fmt.Sprint(v)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ApplyUpdates writes the given cells in one batchUpdate call with
// user-entered interpretation, so values typed like numbers still
// render correctly in the sheet. The batch applies atomically.
func (s *sheetsRosterStore) ApplyUpdates(ctx context.Context, updates []domain.CellUpdate) error {
	data := make([]*sheets.ValueRange, 0, len(updates))
	for _, update := range updates {
		data = append(data, &sheets.ValueRange{
			Range:  update.Range,
			Values: [][]interface{}{{update.Value}},
		})
	}

	req := &sheets.BatchUpdateValuesRequest{
		ValueInputOption: "USER_ENTERED",
		Data:             data,
	}

	if _, err := s.svc.Spreadsheets.Values.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("batch updating %d cells: %w", len(updates), err)
	}
	return nil
}
