package email

import (
	"os"

	"github.com/rs/zerolog"
)

// Dispatcher wraps the configured delivery backend. With no backend it
// reports every dispatch as skipped, which is a valid outcome: a
// deployment without email credentials still takes RSVPs.
type Dispatcher struct {
	backend Notifier
	log     zerolog.Logger
}

// NewDispatcher creates a dispatcher over the given backend. A nil
// backend means email is unconfigured.
func NewDispatcher(backend Notifier) *Dispatcher {
	return &Dispatcher{
		backend: backend,
		log:     zerolog.New(os.Stdout).With().Timestamp().Str("component", "email").Logger(),
	}
}

// Send dispatches one notice and reports the outcome as a value. A
// failed delivery is logged and captured, never escalated.
func (d *Dispatcher) Send(msg Message) Result {
	if d.backend == nil {
		return Result{Skipped: true}
	}

	result := d.backend.Send(msg)
	if !result.Skipped && !result.OK {
		d.log.Warn().Str("to", msg.To).Str("details", result.Details).Msg("confirmation email failed")
	}
	return result
}
