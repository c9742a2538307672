package contact

import (
	"errors"
	"fmt"
)

var (
	ErrContactDisabled   = errors.New("contact: form is not enabled")
	ErrInvalidSubmission = errors.New("contact: invalid submission")
	ErrDeliveryFailed    = errors.New("contact: failed to send message")
	ErrRecipientMissing  = errors.New("contact: no recipient configured")
)

// ValidationError names the first form field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidSubmission
}

// NotFoundError represents a missing submission.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("contact submission %q not found", e.Key)
}
