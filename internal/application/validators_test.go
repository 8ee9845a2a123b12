package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jladao109/wedding-rsvp-api/internal/domain"
)

func TestValidator_ValidateRsvp(t *testing.T) {
	v := &Validator{}

	t.Run("rejects empty email", func(t *testing.T) {
		_, err := v.ValidateRsvp(domain.RsvpRecord{Attending: "Y", Headcount: "2"})
		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "J", validationErr.Field)
	})

	t.Run("rejects whitespace-only email", func(t *testing.T) {
		_, err := v.ValidateRsvp(domain.RsvpRecord{Email: "   "})
		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("accepts payload with only email", func(t *testing.T) {
		record, err := v.ValidateRsvp(domain.RsvpRecord{Email: "a@example.com"})
		require.NoError(t, err)
		assert.Equal(t, "a@example.com", record.Email)
		assert.Empty(t, record.Attending)
	})

	t.Run("trims every field", func(t *testing.T) {
		record, err := v.ValidateRsvp(domain.RsvpRecord{
			Attending: " Y ",
			Headcount: " 2 ",
			Attendees: " John;Jane ",
			Meals:     " Chicken;Fish ",
			Ages:      "  ",
			Email:     " a@example.com ",
			Phone:     " 555-0101 ",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.RsvpRecord{
			Attending: "Y",
			Headcount: "2",
			Attendees: "John;Jane",
			Meals:     "Chicken;Fish",
			Email:     "a@example.com",
			Phone:     "555-0101",
		}, record)
	})
}
