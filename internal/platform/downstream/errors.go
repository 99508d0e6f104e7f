package downstream

import (
	"errors"
	"fmt"
)

// Sentinel errors describing the outcome of a downstream call.
var (
	// ErrInvalidPayload is returned when the downstream API answers 400.
	ErrInvalidPayload = errors.New("downstream rejected the payload")

	// ErrNotFound is returned when no item with the given id exists.
	ErrNotFound = errors.New("item not found")

	// ErrSaveFailed is returned when a create or update answers 500.
	ErrSaveFailed = errors.New("item could not be saved")

	// ErrFetchFailed is returned when a read answers 500.
	ErrFetchFailed = errors.New("item could not be fetched")

	// ErrRemoveFailed is returned when a delete answers 500.
	ErrRemoveFailed = errors.New("item could not be removed")

	// ErrUnexpectedStatus is returned for any status the operation does not expect.
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrInvalidResponse is returned when a success body is not valid JSON.
	ErrInvalidResponse = errors.New("invalid downstream response")

	// ErrUnavailable is returned when the request could not be completed at all.
	ErrUnavailable = errors.New("downstream unavailable")
)

// RequestError adds call context to a downstream failure.
type RequestError struct {
	Method     string
	Collection string
	ID         string
	Status     int // 0 when no response was received
	Err        error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	target := e.Collection
	if e.ID != "" {
		target += "/" + e.ID
	}
	if e.Status != 0 {
		return fmt.Sprintf("%s %s: status %d: %v", e.Method, target, e.Status, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Method, target, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a downstream 404.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
