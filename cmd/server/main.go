package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"medialens/internal/config"
	"medialens/internal/handlers"
	"medialens/internal/server"
)

func main() {
	cfg := config.Load()

	// Optional category catalog
	catalog, err := config.LoadYAMLConfig()
	if err != nil {
		log.Fatalf("Failed to load config file: %v", err)
	}
	if catalog == nil {
		log.Println("No config file found, using built-in categories")
	}
	cfg.Catalog = catalog

	// Metrics registry
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	probes := handlers.NewProbeHandler()

	srv := server.New(cfg)
	srv.RegisterRoutes(reg, probes)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	probes.SetReady(true)
	log.Printf("Server started on %s (generation delay %v)", cfg.ServerAddr, cfg.GenerationDelay)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	probes.SetReady(false)
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
