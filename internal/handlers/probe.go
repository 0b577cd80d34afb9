package handlers

import (
	"sync/atomic"

	"github.com/gofiber/fiber/v3"
)

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	ready atomic.Bool
}

// NewProbeHandler creates a new probe handler. It reports not ready until
// SetReady(true) is called.
func NewProbeHandler() *ProbeHandler {
	return &ProbeHandler{}
}

// SetReady marks the application as able (or no longer able) to serve traffic.
func (h *ProbeHandler) SetReady(ready bool) {
	h.ready.Store(ready)
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Returns 503 while starting up or shutting down.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if !h.ready.Load() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "error",
			"error":  "not ready",
		})
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
