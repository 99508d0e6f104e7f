package shared

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/softhouse/dreams-gateway/internal/domain"
	"github.com/tidwall/gjson"
)

// ErrBodyTooLarge is returned when a request body exceeds the configured limit.
var ErrBodyTooLarge = errors.New("request body too large")

// DecodeJSONObject reads the request body and checks that it holds exactly
// one JSON object. At most limit bytes are read; limit <= 0 disables the
// check.
func DecodeJSONObject(r *http.Request, limit int64) (json.RawMessage, error) {
	if r.Body == nil {
		return nil, domain.ErrNotJSONObject
	}

	var body io.Reader = r.Body
	if limit > 0 {
		body = io.LimitReader(r.Body, limit+1)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, ErrBodyTooLarge
		}
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	if limit > 0 && int64(len(data)) > limit {
		return nil, ErrBodyTooLarge
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, domain.ErrNotJSONObject
	}
	if !gjson.ValidBytes(data) {
		return nil, domain.ErrMalformedJSON
	}
	if !gjson.ParseBytes(data).IsObject() {
		return nil, domain.ErrNotJSONObject
	}
	return json.RawMessage(data), nil
}
