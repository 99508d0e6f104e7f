package api

import (
	"errors"
	"net/http"

	"github.com/softhouse/dreams-gateway/internal/api/shared"
	"github.com/softhouse/dreams-gateway/internal/domain"
	"github.com/softhouse/dreams-gateway/internal/platform/downstream"
	"github.com/softhouse/dreams-gateway/internal/service"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, shared.ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge

	// Bad request errors
	case errors.Is(err, domain.ErrMalformedJSON),
		errors.Is(err, domain.ErrNotJSONObject),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, downstream.ErrInvalidPayload):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, downstream.ErrNotFound),
		errors.Is(err, service.ErrUnknownSide):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrNotUpdatable):
		return http.StatusMethodNotAllowed

	// Partial deletes aggregate downstream failures of any kind.
	case errors.Is(err, service.ErrPartialDelete):
		return http.StatusInternalServerError

	// The downstream API misbehaved
	case errors.Is(err, downstream.ErrUnexpectedStatus),
		errors.Is(err, downstream.ErrInvalidResponse),
		errors.Is(err, downstream.ErrUnavailable),
		errors.Is(err, service.ErrUnexpectedShape):
		return http.StatusBadGateway

	// Default: internal server error, which includes the downstream
	// save/fetch/remove failures.
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return shared.MsgUnexpected
	}

	var validationErr *domain.ValidationError

	// Field-level validation detail stays in the log.
	switch {
	case errors.Is(err, shared.ErrBodyTooLarge):
		return shared.MsgBodyTooLarge
	case errors.Is(err, domain.ErrMalformedJSON):
		return shared.MsgInvalidJSON
	case errors.As(err, &validationErr),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrNotJSONObject),
		errors.Is(err, downstream.ErrInvalidPayload):
		return shared.MsgInvalidJSONObject
	case errors.Is(err, domain.ErrNotUpdatable):
		return shared.MsgNotUpdatable
	case errors.Is(err, downstream.ErrNotFound),
		errors.Is(err, service.ErrUnknownSide):
		return shared.MsgNoSuchItem
	case errors.Is(err, service.ErrPartialDelete),
		errors.Is(err, downstream.ErrRemoveFailed):
		return shared.MsgRemoveFailed
	case errors.Is(err, downstream.ErrSaveFailed):
		return shared.MsgSaveFailed
	case errors.Is(err, downstream.ErrFetchFailed):
		return shared.MsgFetchFailed
	case errors.Is(err, downstream.ErrUnexpectedStatus):
		return shared.MsgUnexpectedStatus
	case errors.Is(err, downstream.ErrInvalidResponse),
		errors.Is(err, service.ErrUnexpectedShape):
		return "The downstream service returned an invalid response."
	case errors.Is(err, downstream.ErrUnavailable):
		return "The downstream service is unavailable."
	default:
		return shared.MsgUnexpected
	}
}

// HandleAPIError writes the status and safe message for err and logs the
// redacted details.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
