package sample

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is returned when a value is rejected by a validating setter.
	ErrValidation = errors.New("validation failed")

	// ErrFormat is a narrower ErrValidation for values with a malformed shape.
	ErrFormat = fmt.Errorf("%w: bad format", ErrValidation)
)

// PropertyError reports a rejected assignment to a named property.
type PropertyError struct {
	Property string
	Value    string
	Reason   string
	Err      error
}

func (e *PropertyError) Error() string {
	return fmt.Sprintf("%s %q: %s: %v", e.Property, e.Value, e.Reason, e.Err)
}

func (e *PropertyError) Unwrap() error {
	return e.Err
}
