package application

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/jladao109/wedding-rsvp-api/internal/domain"
)

// LookupResult is the outcome of one guest lookup. CutoffPassed set
// with no matches is the soft deadline signal: the request is valid but
// editing has closed.
type LookupResult struct {
	CutoffPassed bool           `json:"cutoffPassed"`
	Valid        bool           `json:"valid"`
	Matches      []domain.Party `json:"matches"`
}

// LookupService resolves guest lookups against the shared roster. The
// roster is re-read and re-parsed on every call; nothing is cached
// between requests.
type LookupService struct {
	store  domain.RosterStore
	parser *RosterParser
	gate   *CutoffGate
	log    zerolog.Logger
}

// NewLookupService creates a new lookup service instance.
func NewLookupService(store domain.RosterStore, gate *CutoffGate) *LookupService {
	return &LookupService{
		store:  store,
		parser: NewRosterParser(),
		gate:   gate,
		log:    zerolog.New(os.Stdout).With().Timestamp().Str("component", "lookup").Logger(),
	}
}

// Lookup returns every party whose members include the queried last
// name. The zip filters only when supplied: an absent zip never
// excludes a row. Matches keep roster order and carry the sheet row
// number that a later submission must address.
func (s *LookupService) Lookup(ctx context.Context, lastName, zip string) (*LookupResult, error) {
	query := domain.MatchQuery{
		LastNameLower: normalizeLower(lastName),
		Zip:           stripSpace(zip),
	}
	if query.LastNameLower == "" {
		return nil, domain.NewValidationError("lastName", "Please provide lastName.")
	}

	if !s.gate.IsOpen() {
		return &LookupResult{CutoffPassed: true, Matches: []domain.Party{}}, nil
	}

	rows, err := s.store.ReadRoster(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("roster read failed")
		return nil, &domain.StoreError{Op: "read", Err: err}
	}

	matches := s.findMatches(rows, query)
	return &LookupResult{
		Valid:   len(matches) > 0,
		Matches: matches,
	}, nil
}

func (s *LookupService) findMatches(rows []domain.RawRow, query domain.MatchQuery) []domain.Party {
	matches := make([]domain.Party, 0)
	for i, row := range rows {
		party := s.parser.ParseParty(row, i+domain.FirstDataRow)
		if s.qualifies(party, query) {
			matches = append(matches, party)
		}
	}
	return matches
}

// qualifies applies the match predicate: the last name must appear
// among the party's members (case-insensitive), and a supplied zip must
// appear in the party's zip set exactly.
func (s *LookupService) qualifies(party domain.Party, query domain.MatchQuery) bool {
	hasLastName := false
	for _, guest := range party.Guests {
		if normalizeLower(guest.LastName) == query.LastNameLower {
			hasLastName = true
			break
		}
	}
	if !hasLastName {
		return false
	}

	if query.Zip == "" {
		return true
	}
	for _, zip := range party.Zips {
		if zip == query.Zip {
			return true
		}
	}
	return false
}
