package mocks

import (
	"context"
	"encoding/json"
	"sync"
)

// DownstreamCall records one call made to MockDownstream.
type DownstreamCall struct {
	Method     string
	Collection string
	ID         string
	Query      string
	Payload    any
}

// MockDownstream implements service.Downstream for testing.
type MockDownstream struct {
	// Custom behavior functions
	CreateFn func(ctx context.Context, collection string, payload any) (json.RawMessage, error)
	GetFn    func(ctx context.Context, collection, id string) (json.RawMessage, error)
	ListFn   func(ctx context.Context, collection, rawQuery string) (json.RawMessage, error)
	UpdateFn func(ctx context.Context, collection, id string, payload any) error
	DeleteFn func(ctx context.Context, collection, id string) error

	mu    sync.Mutex
	calls []DownstreamCall
}

func (m *MockDownstream) record(call DownstreamCall) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

// Calls returns a copy of the calls made so far.
func (m *MockDownstream) Calls() []DownstreamCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]DownstreamCall(nil), m.calls...)
}

// CallsTo returns the calls made with the given method.
func (m *MockDownstream) CallsTo(method string) []DownstreamCall {
	var out []DownstreamCall
	for _, c := range m.Calls() {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

// Create implements service.Downstream.
func (m *MockDownstream) Create(ctx context.Context, collection string, payload any) (json.RawMessage, error) {
	m.record(DownstreamCall{Method: "Create", Collection: collection, Payload: payload})
	if m.CreateFn != nil {
		return m.CreateFn(ctx, collection, payload)
	}
	return json.Marshal(payload)
}

// Get implements service.Downstream.
func (m *MockDownstream) Get(ctx context.Context, collection, id string) (json.RawMessage, error) {
	m.record(DownstreamCall{Method: "Get", Collection: collection, ID: id})
	if m.GetFn != nil {
		return m.GetFn(ctx, collection, id)
	}
	return json.RawMessage(`{}`), nil
}

// List implements service.Downstream.
func (m *MockDownstream) List(ctx context.Context, collection, rawQuery string) (json.RawMessage, error) {
	m.record(DownstreamCall{Method: "List", Collection: collection, Query: rawQuery})
	if m.ListFn != nil {
		return m.ListFn(ctx, collection, rawQuery)
	}
	return json.RawMessage(`[]`), nil
}

// Update implements service.Downstream.
func (m *MockDownstream) Update(ctx context.Context, collection, id string, payload any) error {
	m.record(DownstreamCall{Method: "Update", Collection: collection, ID: id, Payload: payload})
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, collection, id, payload)
	}
	return nil
}

// Delete implements service.Downstream.
func (m *MockDownstream) Delete(ctx context.Context, collection, id string) error {
	m.record(DownstreamCall{Method: "Delete", Collection: collection, ID: id})
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, collection, id)
	}
	return nil
}
