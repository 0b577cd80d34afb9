package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"medialens/internal/config"
	"medialens/internal/middleware"
	"medialens/internal/models"
	"medialens/internal/service"
)

// PageHandler serves the landing page and its form posts.
type PageHandler struct {
	cfg *config.Config
	gen Generator
}

// NewPageHandler creates a new page handler.
func NewPageHandler(cfg *config.Config, gen Generator) *PageHandler {
	return &PageHandler{cfg: cfg, gen: gen}
}

// Index renders the landing page with empty forms.
func (h *PageHandler) Index(c fiber.Ctx) error {
	return c.Render("index", h.pageData())
}

// pageData returns the template data every full-page render needs.
func (h *PageHandler) pageData() fiber.Map {
	return MergeBranding(fiber.Map{
		"Categories": h.cfg.Categories(),
		"IdeaForm":   models.IdeaRequest{},
		"SearchForm": models.SearchRequest{},
	}, h.cfg)
}

// generationError converts a generation failure into the response the caller
// expects: an inline message for HTMX, an error page otherwise.
func generationError(c fiber.Ctx, feature string, err error) error {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		if isHTMX(c) {
			return htmxError(c, verr.Message)
		}
		return fiber.NewError(fiber.StatusBadRequest, verr.Message)
	}

	slog.Error("generation failed", "feature", feature, "error", err)
	if isHTMX(c) {
		return htmxError(c, middleware.GenerationFailedMessage)
	}
	return fiber.NewError(fiber.StatusInternalServerError, middleware.GenerationFailedMessage)
}
