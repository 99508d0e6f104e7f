package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a payload fails validation.
	// It is usually wrapped in a *ValidationError naming the field.
	ErrValidation = errors.New("validation failed")

	// ErrMalformedJSON is returned when a request body is not JSON at all.
	ErrMalformedJSON = errors.New("malformed JSON")

	// ErrNotJSONObject is returned when a request body is valid JSON but not
	// a single object (empty body, array, scalar).
	ErrNotJSONObject = errors.New("JSON body is not an object")

	// ErrUnknownCollection is returned when a collection name is not in the catalogue.
	ErrUnknownCollection = errors.New("unknown collection")

	// ErrNotUpdatable is returned when an update is attempted on a collection
	// that only supports create and delete.
	ErrNotUpdatable = errors.New("collection does not support updates")
)

// ValidationError describes a single invalid field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for field. A nil err defaults
// to ErrValidation.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{Field: field, Message: message, Err: err}
}
