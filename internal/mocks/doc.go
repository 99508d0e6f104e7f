// Package mocks provides hand-written test doubles for the gateway's
// interfaces. Each mock records its calls and lets a test override behaviour
// per method through a function field.
package mocks
