package testutils

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/softhouse/dreams-gateway/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateTestServer creates a httptest server with the given handler.
// Automatically registers cleanup via t.Cleanup() so callers don't need to manually close the server.
func CreateTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

// DoRequest sends a request with an optional JSON body to server and returns
// the status code and the response body.
func DoRequest(t *testing.T, server *httptest.Server, method, path, body string) (int, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, server.URL+path, reader)
	require.NoError(t, err, "Failed to build request")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err, "Request failed")
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")
	return resp.StatusCode, string(data)
}

// ErrorMessage decodes the error envelope in body and returns its message.
func ErrorMessage(t *testing.T, body string) string {
	t.Helper()

	var errResp shared.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(body), &errResp), "Failed to unmarshal error response: %s", body)
	return errResp.Error
}

// AssertErrorResponse checks the status code and error message of a response.
func AssertErrorResponse(t *testing.T, status int, body string, expectedStatus int, expectedMessage string) {
	t.Helper()

	assert.Equal(t, expectedStatus, status, "Unexpected status code, body: %s", body)
	assert.Equal(t, expectedMessage, ErrorMessage(t, body))
}
