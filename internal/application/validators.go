package application

import (
	"strings"

	"github.com/jladao109/wedding-rsvp-api/internal/domain"
)

// Validator contains RSVP payload validation functions.
type Validator struct{}

// ValidateRsvp trims every field of an incoming RSVP payload and checks
// the only hard rule: a contact email must be present. Every other
// field is free text and passes through as typed.
func (v *Validator) ValidateRsvp(payload domain.RsvpRecord) (domain.RsvpRecord, error) {
	record := domain.RsvpRecord{
		Attending: strings.TrimSpace(payload.Attending),
		Headcount: strings.TrimSpace(payload.Headcount),
		Attendees: strings.TrimSpace(payload.Attendees),
		Meals:     strings.TrimSpace(payload.Meals),
		Ages:      strings.TrimSpace(payload.Ages),
		Email:     strings.TrimSpace(payload.Email),
		Phone:     strings.TrimSpace(payload.Phone),
	}

	if record.Email == "" {
		return domain.RsvpRecord{}, domain.NewValidationError("J", "Email is required.")
	}

	return record, nil
}
