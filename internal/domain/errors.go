// Package domain defines the closed value types and sentinel errors
// shared by the API layer.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when input fails a declared constraint.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrUnknownModelName is returned when a model name is outside the
	// closed ModelName set.
	ErrUnknownModelName = errors.New("unknown model name")
)

// ValidationError carries the failing field alongside the constraint
// message so the API layer can build a structured 422 response.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError wrapping the given sentinel.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped sentinel so errors.Is keeps working.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
