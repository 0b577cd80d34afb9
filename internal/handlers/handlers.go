package handlers

import (
	"html"

	"github.com/gofiber/fiber/v3"

	"medialens/internal/models"
)

// Generator produces generated responses for the page features.
type Generator interface {
	Ideas(req models.IdeaRequest) (*models.GeneratedResponse, error)
	Search(req models.SearchRequest) (*models.GeneratedResponse, error)
}

// htmxError returns an error message as HTML that HTMX will display.
// Uses 200 status so HTMX processes the swap (HTMX ignores non-2xx by default).
func htmxError(c fiber.Ctx, message string) error {
	return c.SendString(
		`<div class="result error" role="alert">` + html.EscapeString(message) + `</div>`,
	)
}

// isHTMX reports whether the request was issued by HTMX and expects a partial.
func isHTMX(c fiber.Ctx) bool {
	return c.Get("HX-Request") == "true"
}
