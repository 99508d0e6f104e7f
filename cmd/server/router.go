package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/softhouse/dreams-gateway/internal/api"
	apimiddleware "github.com/softhouse/dreams-gateway/internal/api/middleware"
)

// setupRouter creates the router with the middleware stack, the resource
// routes and the operational endpoints.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apimiddleware.Trace(app.logger))
	r.Use(apimiddleware.RequestLogger)
	r.Use(app.httpMetrics.Handler)
	r.Use(middleware.Recoverer)
	r.Use(apimiddleware.MaxBodyBytes(app.config.Server.MaxBodyBytes))

	api.RegisterRoutes(r, app.services, app.config.Server.MaxBodyBytes)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	if app.config.Metrics.Enabled {
		path := app.config.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		r.Handle(path, promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{Registry: app.registry}))
	}

	return r
}
