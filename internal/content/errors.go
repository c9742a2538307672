package content

import (
	"errors"
	"fmt"
)

var (
	ErrSourceRequired  = errors.New("content: document source is required")
	ErrItemRequired    = errors.New("content: item is required")
	ErrInvalidPassword = errors.New("content: invalid password")
)

// NotFoundError represents a missing content path or identifier.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// IsNotFound reports whether err carries a NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}
