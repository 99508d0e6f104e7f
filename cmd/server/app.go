package main

import (
	"fmt"
	"log/slog"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	apimiddleware "github.com/softhouse/dreams-gateway/internal/api/middleware"
	"github.com/softhouse/dreams-gateway/internal/config"
	"github.com/softhouse/dreams-gateway/internal/domain"
	"github.com/softhouse/dreams-gateway/internal/platform/downstream"
	"github.com/softhouse/dreams-gateway/internal/service"
)

// application holds all the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	registry    *prometheus.Registry
	httpMetrics *apimiddleware.HTTPMetrics

	downstream *downstream.Client
	services   []service.ResourceService
}

// newApplication wires the downstream client and one resource service per
// catalogued collection.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config:   cfg,
		logger:   logger,
		registry: prometheus.NewRegistry(),
	}
	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	app.httpMetrics = apimiddleware.NewHTTPMetrics(app.registry)

	var err error
	app.downstream, err = downstream.NewClient(
		cfg.Downstream,
		logger.With("component", "downstream"),
		downstream.WithMetrics(downstream.NewMetrics(app.registry)),
		downstream.WithRequestID(chimiddleware.GetReqID),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize downstream client: %w", err)
	}

	app.services, err = service.NewResourceServices(
		domain.DefaultCatalog(),
		app.downstream,
		logger,
		service.Options{DeleteConcurrency: cfg.Downstream.DeleteConcurrency},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize resource services: %w", err)
	}
	logger.Info("resource services initialized", "collections", len(app.services))

	return app, nil
}
