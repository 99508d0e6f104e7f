package service

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by resource services.
var (
	// ErrUnknownSide is returned when a connector is addressed through a side
	// it does not have.
	ErrUnknownSide = errors.New("unknown connector side")

	// ErrUnexpectedShape is returned when a downstream document does not have
	// the shape the operation needs (e.g. a list that is not an array).
	ErrUnexpectedShape = errors.New("unexpected downstream document shape")

	// ErrPartialDelete is returned when some deletions of a cascade failed.
	ErrPartialDelete = errors.New("some items could not be removed")
)

// ServiceError wraps errors from a resource service with context.
type ServiceError struct {
	// Collection is the downstream collection the operation targeted.
	Collection string
	// Operation is the operation that failed (e.g. "create", "delete_by_side").
	Operation string
	// Err is the underlying error that caused the failure.
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Collection, e.Operation, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

func newServiceError(collection, operation string, err error) error {
	if err == nil {
		return nil
	}
	return &ServiceError{Collection: collection, Operation: operation, Err: err}
}
