package shared

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/softhouse/dreams-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSONObject(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		limit   int64
		wantErr error
		want    string
	}{
		{name: "object", body: `{"name": "Dreams"}`, want: `{"name": "Dreams"}`},
		{name: "surrounding whitespace", body: "\n  {\"a\":1}  \n", want: `{"a":1}`},
		{name: "empty body", body: "", wantErr: domain.ErrNotJSONObject},
		{name: "whitespace only", body: "   ", wantErr: domain.ErrNotJSONObject},
		{name: "trailing comma", body: `{"name": "x",}`, wantErr: domain.ErrMalformedJSON},
		{name: "plain text", body: `name=x`, wantErr: domain.ErrMalformedJSON},
		{name: "array", body: `[{"name": "x"}]`, wantErr: domain.ErrNotJSONObject},
		{name: "string", body: `"x"`, wantErr: domain.ErrNotJSONObject},
		{name: "null", body: `null`, wantErr: domain.ErrNotJSONObject},
		{name: "within limit", body: `{"a":1}`, limit: 7, want: `{"a":1}`},
		{name: "over limit", body: `{"a":12}`, limit: 7, wantErr: ErrBodyTooLarge},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/customer", strings.NewReader(tc.body))

			got, err := DecodeJSONObject(req, tc.limit)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, tc.want, string(got))
		})
	}
}

func TestDecodeJSONObjectMaxBytesReader(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/customer", strings.NewReader(`{"name":"too long"}`))
	req.Body = http.MaxBytesReader(rec, req.Body, 4)

	_, err := DecodeJSONObject(req, 0)
	assert.ErrorIs(t, err, ErrBodyTooLarge)
}

type errorReader struct{}

func (errorReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

func TestDecodeJSONObjectReadError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/customer", errorReader{})

	_, err := DecodeJSONObject(req, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
