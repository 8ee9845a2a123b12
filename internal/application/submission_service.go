package application

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/jladao109/wedding-rsvp-api/internal/domain"
	"github.com/jladao109/wedding-rsvp-api/internal/email"
)

// ConfirmationCopy is the confirmation notice sent after a saved RSVP.
type ConfirmationCopy struct {
	Subject string
	Text    string
	HTML    string
}

// SubmitResult is the outcome of a persisted submission. EmailResult is
// informational: the write already succeeded whatever it says.
type SubmitResult struct {
	Email       string
	EmailResult email.Result
}

// SubmissionService validates an incoming RSVP, persists the seven
// write-back cells of the identified roster row in one batched call,
// then attempts the confirmation notice.
type SubmissionService struct {
	store     domain.RosterStore
	gate      *CutoffGate
	notifier  *email.Dispatcher
	validator *Validator
	tab       string
	notice    ConfirmationCopy
	log       zerolog.Logger
}

// NewSubmissionService creates a new submission service instance.
func NewSubmissionService(store domain.RosterStore, gate *CutoffGate, notifier *email.Dispatcher, tab string, notice ConfirmationCopy) *SubmissionService {
	return &SubmissionService{
		store:     store,
		gate:      gate,
		notifier:  notifier,
		validator: &Validator{},
		tab:       tab,
		notice:    notice,
		log:       zerolog.New(os.Stdout).With().Timestamp().Str("component", "submission").Logger(),
	}
}

// Submit applies one RSVP to the given sheet row. The cutoff gate is
// checked before anything touches the store; past the deadline no write
// is attempted. Two submissions racing on the same row resolve as
// last-write-wins.
func (s *SubmissionService) Submit(ctx context.Context, rowNumber int, payload domain.RsvpRecord) (*SubmitResult, error) {
	if !s.gate.IsOpen() {
		return nil, domain.ErrCutoffPassed
	}

	if rowNumber < domain.FirstDataRow {
		return nil, domain.NewValidationError("rowNumber", "Missing rowNumber or values.")
	}

	record, err := s.validator.ValidateRsvp(payload)
	if err != nil {
		return nil, err
	}

	updates := s.PrepareWrite(rowNumber, record)
	if err := s.store.ApplyUpdates(ctx, updates); err != nil {
		s.log.Error().Err(err).Int("row", rowNumber).Msg("rsvp write failed")
		return nil, &domain.StoreError{Op: "write", Err: err}
	}

	s.log.Info().Int("row", rowNumber).Msg("rsvp saved")

	emailResult := s.notifier.Send(email.Message{
		To:      record.Email,
		Subject: s.notice.Subject,
		Text:    s.notice.Text,
		HTML:    s.notice.HTML,
	})

	return &SubmitResult{Email: record.Email, EmailResult: emailResult}, nil
}

// PrepareWrite maps a validated RSVP onto the row's seven fixed cells,
// E through K, in column order.
func (s *SubmissionService) PrepareWrite(rowNumber int, record domain.RsvpRecord) []domain.CellUpdate {
	cells := []struct {
		column string
		value  string
	}{
		{"E", record.Attending},
		{"F", record.Headcount},
		{"G", record.Attendees},
		{"H", record.Meals},
		{"I", record.Ages},
		{"J", record.Email},
		{"K", record.Phone},
	}

	updates := make([]domain.CellUpdate, 0, len(cells))
	for _, cell := range cells {
		updates = append(updates, domain.CellUpdate{
			Range: fmt.Sprintf("%s!%s%d", s.tab, cell.column, rowNumber),
			Value: cell.value,
		})
	}
	return updates
}
