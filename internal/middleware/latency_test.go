package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
)

func TestWait_Elapses(t *testing.T) {
	start := time.Now()
	if err := wait(context.Background(), context.Background(), 20*time.Millisecond); err != nil {
		t.Fatalf("wait() error = %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("wait() returned after %v, want at least 20ms", elapsed)
	}
}

func TestWait_ShutdownCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := wait(ctx, context.Background(), time.Hour)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("wait() error = %v, want context.Canceled", err)
	}
}

func TestWait_RequestDone(t *testing.T) {
	req, cancel := context.WithCancel(context.Background())
	cancel()

	if err := wait(context.Background(), req, time.Hour); !errors.Is(err, context.Canceled) {
		t.Errorf("wait() error = %v, want context.Canceled", err)
	}
}

func TestSimulateLatency(t *testing.T) {
	tests := []struct {
		name    string
		delay   time.Duration
		minTime time.Duration
	}{
		{"disabled", 0, 0},
		{"short delay", 30 * time.Millisecond, 30 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Post("/ideas", SimulateLatency(context.Background(), tt.delay), func(c fiber.Ctx) error {
				return c.SendString("ok")
			})

			start := time.Now()
			req, _ := http.NewRequest("POST", "/ideas", nil)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != 200 {
				t.Fatalf("expected 200, got %d", resp.StatusCode)
			}
			if elapsed := time.Since(start); elapsed < tt.minTime {
				t.Errorf("request took %v, want at least %v", elapsed, tt.minTime)
			}
		})
	}
}

func TestSimulateLatency_CancelledMidDelay(t *testing.T) {
	shutdown, cancel := context.WithCancel(context.Background())

	var reached atomic.Bool
	app := fiber.New()
	app.Post("/ideas", SimulateLatency(shutdown, time.Hour), func(c fiber.Ctx) error {
		reached.Store(true)
		return c.SendString("ok")
	})

	time.AfterFunc(20*time.Millisecond, cancel)

	start := time.Now()
	req, _ := http.NewRequest("POST", "/ideas", nil)
	resp, err := app.Test(req, fiber.TestConfig{Timeout: 5 * time.Second})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != fiber.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", resp.StatusCode)
	}
	if string(body) != GenerationFailedMessage {
		t.Errorf("body = %q, want %q", body, GenerationFailedMessage)
	}
	if reached.Load() {
		t.Error("handler should not run after the delay is cut short")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("request took %v, the delay was not interrupted", elapsed)
	}
}
