package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/softhouse/dreams-gateway/internal/api/shared"
	"github.com/softhouse/dreams-gateway/internal/domain"
	"github.com/softhouse/dreams-gateway/internal/platform/downstream"
	"github.com/softhouse/dreams-gateway/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	partial := fmt.Errorf("%w: %w", service.ErrPartialDelete,
		multierror.Append(nil, downstream.ErrRemoveFailed, downstream.ErrUnavailable))

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{"nil error", nil, http.StatusInternalServerError, shared.MsgUnexpected},
		{"malformed JSON", domain.ErrMalformedJSON, http.StatusBadRequest, shared.MsgInvalidJSON},
		{"not an object", domain.ErrNotJSONObject, http.StatusBadRequest, shared.MsgInvalidJSONObject},
		{
			"validation error",
			domain.NewValidationError("name", "is required", domain.ErrValidation),
			http.StatusBadRequest,
			shared.MsgInvalidJSONObject,
		},
		{
			"downstream rejected payload",
			&downstream.RequestError{Method: "POST", Collection: "skill", Status: 400, Err: downstream.ErrInvalidPayload},
			http.StatusBadRequest,
			shared.MsgInvalidJSONObject,
		},
		{
			"wrapped not found",
			&service.ServiceError{Collection: "user", Operation: "get", Err: &downstream.RequestError{
				Method: "GET", Collection: "user", ID: "1", Status: 404, Err: downstream.ErrNotFound,
			}},
			http.StatusNotFound,
			shared.MsgNoSuchItem,
		},
		{"unknown side", service.ErrUnknownSide, http.StatusNotFound, shared.MsgNoSuchItem},
		{"not updatable", domain.ErrNotUpdatable, http.StatusMethodNotAllowed, shared.MsgNotUpdatable},
		{"save failed", downstream.ErrSaveFailed, http.StatusInternalServerError, shared.MsgSaveFailed},
		{"fetch failed", downstream.ErrFetchFailed, http.StatusInternalServerError, shared.MsgFetchFailed},
		{"remove failed", downstream.ErrRemoveFailed, http.StatusInternalServerError, shared.MsgRemoveFailed},
		{"partial delete", partial, http.StatusInternalServerError, shared.MsgRemoveFailed},
		{"unexpected status", downstream.ErrUnexpectedStatus, http.StatusBadGateway, shared.MsgUnexpectedStatus},
		{
			"invalid response",
			downstream.ErrInvalidResponse,
			http.StatusBadGateway,
			"The downstream service returned an invalid response.",
		},
		{
			"unavailable",
			fmt.Errorf("%w: %w", downstream.ErrUnavailable, errors.New("dial tcp: connection refused")),
			http.StatusBadGateway,
			"The downstream service is unavailable.",
		},
		{"body too large", shared.ErrBodyTooLarge, http.StatusRequestEntityTooLarge, shared.MsgBodyTooLarge},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, shared.MsgUnexpected},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedStatus, MapErrorToStatusCode(tc.err))
			assert.Equal(t, tc.expectedMsg, GetSafeErrorMessage(tc.err))
		})
	}
}

func TestGetSafeErrorMessageDoesNotLeak(t *testing.T) {
	err := &service.ServiceError{
		Collection: "customer",
		Operation:  "get",
		Err:        fmt.Errorf("%w: Get \"http://admin:s3cret@db:3000/customer/1\": EOF", downstream.ErrUnavailable),
	}

	msg := GetSafeErrorMessage(err)
	assert.NotContains(t, msg, "s3cret")
	assert.NotContains(t, msg, "db:3000")
}
