package middleware

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
)

// GenerationFailedMessage is shown when a simulated generation is cut short.
const GenerationFailedMessage = "Failed to generate ideas. Please try again."

// SimulateLatency holds each request for delay before passing it on, to mimic
// a slow upstream model. A zero delay disables it. The wait ends early with a
// 503 when shutdown is cancelled or the underlying request context is done
// (fasthttp closes it when the server shuts down).
func SimulateLatency(shutdown context.Context, delay time.Duration) fiber.Handler {
	return func(c fiber.Ctx) error {
		if delay <= 0 {
			return c.Next()
		}
		if err := wait(shutdown, c.RequestCtx(), delay); err != nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, GenerationFailedMessage)
		}
		return c.Next()
	}
}

// wait blocks for d or until either context is done.
func wait(shutdown, req context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-shutdown.Done():
		return shutdown.Err()
	case <-req.Done():
		return context.Canceled
	case <-timer.C:
		return nil
	}
}
