// Package middleware holds the HTTP middleware of the gateway: trace ids and
// request-scoped loggers, request logging, body size limits and Prometheus
// instrumentation.
package middleware
