package testutils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
)

// FakeAPI is an in-memory persistence API. POST answers 200 with the stored
// document, GET by id 200 or 404, a filtered list with no matches 404, PUT
// and DELETE 204.
type FakeAPI struct {
	server *httptest.Server

	mu       sync.Mutex
	nextID   int
	docs     map[string]map[string]map[string]any
	failWith map[string]int
	puts     []map[string]any
	headers  []http.Header
	queries  []string
}

// NewFakeAPI starts a FakeAPI that is closed when the test ends.
func NewFakeAPI(t *testing.T) *FakeAPI {
	t.Helper()

	f := &FakeAPI{
		docs:     make(map[string]map[string]map[string]any),
		failWith: make(map[string]int),
	}
	f.server = CreateTestServer(t, f)
	return f
}

// URL is the base URL of the fake.
func (f *FakeAPI) URL() string {
	return f.server.URL
}

// Seed stores doc under collection/id.
func (f *FakeAPI) Seed(collection, id string, doc map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc["_id"] = id
	f.collection(collection)[id] = doc
}

// Count returns the number of stored documents in collection.
func (f *FakeAPI) Count(collection string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.docs[collection])
}

// FailWith makes every request to collection answer with status until the
// test ends.
func (f *FakeAPI) FailWith(t *testing.T, collection string, status int) {
	t.Helper()

	f.mu.Lock()
	f.failWith[collection] = status
	f.mu.Unlock()

	t.Cleanup(func() {
		f.mu.Lock()
		delete(f.failWith, collection)
		f.mu.Unlock()
	})
}

// Puts returns the bodies received by PUT requests, oldest first.
func (f *FakeAPI) Puts() []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]any(nil), f.puts...)
}

// Headers returns the headers of every request received, oldest first.
func (f *FakeAPI) Headers() []http.Header {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]http.Header(nil), f.headers...)
}

// RawQueries returns the raw query string of every request received, oldest
// first.
func (f *FakeAPI) RawQueries() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.queries...)
}

func (f *FakeAPI) collection(name string) map[string]map[string]any {
	docs := f.docs[name]
	if docs == nil {
		docs = make(map[string]map[string]any)
		f.docs[name] = docs
	}
	return docs
}

// ServeHTTP implements http.Handler.
func (f *FakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.headers = append(f.headers, r.Header.Clone())
	f.queries = append(f.queries, r.URL.RawQuery)

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	name := parts[0]
	if status, ok := f.failWith[name]; ok {
		w.WriteHeader(status)
		return
	}
	docs := f.collection(name)

	if len(parts) == 1 {
		switch r.Method {
		case http.MethodPost:
			var doc map[string]any
			if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			f.nextID++
			id := fmt.Sprintf("id%d", f.nextID)
			doc["_id"] = id
			docs[id] = doc
			writeJSON(w, doc)
		case http.MethodGet:
			query := r.URL.Query()
			matches := []map[string]any{}
			for _, doc := range docs {
				if matchesQuery(doc, query) {
					matches = append(matches, doc)
				}
			}
			if len(matches) == 0 && len(query) > 0 {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			writeJSON(w, matches)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
		return
	}

	id := parts[1]
	doc, ok := docs[id]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	switch r.Method {
	case http.MethodGet:
		writeJSON(w, doc)
	case http.MethodPut:
		var update map[string]any
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f.puts = append(f.puts, update)
		stored := make(map[string]any, len(update)+1)
		for k, v := range update {
			stored[k] = v
		}
		stored["_id"] = id
		docs[id] = stored
		w.WriteHeader(http.StatusNoContent)
	case http.MethodDelete:
		delete(docs, id)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func matchesQuery(doc map[string]any, query url.Values) bool {
	for key := range query {
		if fmt.Sprint(doc[key]) != query.Get(key) {
			return false
		}
	}
	return true
}
