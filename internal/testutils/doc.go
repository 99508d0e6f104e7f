// Package testutils provides testing utilities for the gateway.
//
// FakeAPI is an in-memory stand-in for the persistence API that answers
// with the status codes the gateway expects, so handler and application
// tests can run the real downstream client end to end:
//
//	fake := testutils.NewFakeAPI(t)
//	fake.Seed("customer", "c1", map[string]any{"name": "Softhouse"})
//	client, _ := downstream.NewClient(config.DownstreamConfig{BaseURL: fake.URL()}, log)
//
// The HTTP helpers wrap httptest servers and assert on the gateway's error
// envelope.
package testutils
