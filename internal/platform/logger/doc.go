// Package logger provides structured logging functionality for the gateway.
//
// It utilizes Go's standard library log/slog package to implement structured
// logging with configurable log levels. JSON output is the default; a
// colourised console format backed by tint is available for local work.
// Request-scoped loggers travel on the context.
package logger
