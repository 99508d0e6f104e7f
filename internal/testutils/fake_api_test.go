package testutils

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestFakeAPI(t *testing.T) {
	fake := NewFakeAPI(t)
	fake.Seed("skill", "s1", map[string]any{"name": "Go"})

	status, body := DoRequest(t, fake.server, http.MethodPost, "/skill", `{"name":"Rust"}`)
	require.Equal(t, http.StatusOK, status)
	id := gjson.Get(body, "_id").String()
	assert.NotEmpty(t, id)
	assert.Equal(t, 2, fake.Count("skill"))

	status, body = DoRequest(t, fake.server, http.MethodGet, "/skill?name=Go", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "s1", gjson.Get(body, "0._id").String())
	assert.Contains(t, fake.RawQueries(), "name=Go")

	status, _ = DoRequest(t, fake.server, http.MethodGet, "/skill?name=Java", "")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = DoRequest(t, fake.server, http.MethodPut, "/skill/s1", `{"name":"Golang"}`)
	assert.Equal(t, http.StatusNoContent, status)
	require.Len(t, fake.Puts(), 1)
	assert.Equal(t, "Golang", fake.Puts()[0]["name"])

	status, _ = DoRequest(t, fake.server, http.MethodDelete, "/skill/"+id, "")
	assert.Equal(t, http.StatusNoContent, status)
	status, _ = DoRequest(t, fake.server, http.MethodDelete, "/skill/"+id, "")
	assert.Equal(t, http.StatusNotFound, status)

	t.Run("fail with", func(t *testing.T) {
		fake.FailWith(t, "skill", http.StatusInternalServerError)
		status, _ := DoRequest(t, fake.server, http.MethodGet, "/skill/s1", "")
		assert.Equal(t, http.StatusInternalServerError, status)
	})

	status, _ = DoRequest(t, fake.server, http.MethodGet, "/skill/s1", "")
	assert.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, fake.Headers())
}

func TestAssertErrorResponse(t *testing.T) {
	AssertErrorResponse(t, http.StatusNotFound, `{"error":"No item with the given id was found.","trace_id":"x"}`,
		http.StatusNotFound, "No item with the given id was found.")
}
