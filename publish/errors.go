package publish

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig indicates the configuration failed load-time validation.
	ErrInvalidConfig = errors.New("invalid publish configuration")
)

// ValidationError describes a single schema violation found at load time.
// It matches ErrInvalidConfig under errors.Is.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid publish configuration: %s: %s", e.Field, e.Reason)
}

// Is reports ErrInvalidConfig as a match so callers can test the error kind
// without inspecting the field detail.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// Unwrap exposes the underlying decode error, if any.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

func validationErrorf(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
