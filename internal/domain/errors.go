package domain

import (
	"errors"
	"fmt"
)

// ErrCutoffPassed signals that the fixed RSVP deadline has passed.
// Lookups report it as a soft flag; submissions reject with it.
var ErrCutoffPassed = errors.New("rsvp cutoff passed")

// ValidationError reports a client-supplied field that failed
// validation. Message is safe to return to the requester verbatim.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error for one request field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// StoreError wraps a read or write failure from the backing sheet. The
// requester only ever sees a generic server error; the wrapped cause
// stays available for logs and the diagnostic details field.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("roster store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
