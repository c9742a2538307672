package layout

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownPage     = errors.New("layout: unknown page type")
	ErrUnknownPosition = errors.New("layout: unknown slot position")
)

// InvalidInputError reports a page or position name that is not recognised.
type InvalidInputError struct {
	Field string
	Value string
	Err   error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("layout: invalid %s %q", e.Field, e.Value)
}

func (e *InvalidInputError) Unwrap() error {
	return e.Err
}
