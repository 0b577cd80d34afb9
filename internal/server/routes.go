package server

import (
	"github.com/prometheus/client_golang/prometheus"

	"medialens/internal/handlers"
	"medialens/internal/handlers/api"
	"medialens/internal/metrics"
	"medialens/internal/middleware"
	"medialens/internal/service"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(reg *prometheus.Registry, probes *handlers.ProbeHandler) {
	recorder := metrics.New(reg)
	generation := service.NewGeneration(recorder, s.Cfg.Catalog)

	// Initialize middleware
	latency := middleware.SimulateLatency(s.ctx, s.Cfg.GenerationDelay)

	// Initialize handlers
	pageHandler := handlers.NewPageHandler(s.Cfg, generation)
	generateHandler := api.NewGenerateHandler(generation)
	categoriesHandler := api.NewCategoriesHandler(s.Cfg)

	// Probes and metrics
	s.App.Get("/healthz", probes.Liveness)
	s.App.Get("/readyz", probes.Readiness)
	s.App.Get("/metrics", recorder.Handler())

	// Frontend routes
	s.App.Get("/", pageHandler.Index)
	s.App.Post("/ideas", latency, pageHandler.Ideas)
	s.App.Post("/search", latency, pageHandler.Search)

	// JSON API
	v1 := s.App.Group("/api/v1")
	v1.Get("/categories", categoriesHandler.List)
	v1.Post("/ideas", latency, generateHandler.Ideas)
	v1.Post("/search", latency, generateHandler.Search)
}
