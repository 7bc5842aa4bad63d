// Package common defines shared constants and sentinel errors used across
// the RentalConnect data layer. Callers should use errors.Is to match the
// sentinel values and errors.As to extract a *ValidationError.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrInternal = errors.New("internal error")

	// ErrInvalidCredentials is the normal negative result of a login
	// attempt: unknown email or password mismatch. It is not a system
	// fault and must never wrap a driver error.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError reports a rejected registration draft. It names the field
// that failed so the view layer can attach the message to the right input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

// NewValidationError builds a *ValidationError for the given field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
