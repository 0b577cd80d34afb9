package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"medialens/internal/middleware"
	"medialens/internal/models"
	"medialens/internal/service"
)

// Generator produces generated responses.
type Generator interface {
	Ideas(req models.IdeaRequest) (*models.GeneratedResponse, error)
	Search(req models.SearchRequest) (*models.GeneratedResponse, error)
}

// GenerateHandler exposes the idea and search features as JSON.
type GenerateHandler struct {
	gen Generator
}

// NewGenerateHandler creates a new API generate handler.
func NewGenerateHandler(gen Generator) *GenerateHandler {
	return &GenerateHandler{gen: gen}
}

// Ideas generates content ideas from a JSON IdeaRequest.
func (h *GenerateHandler) Ideas(c fiber.Ctx) error {
	var req models.IdeaRequest
	if err := c.Bind().JSON(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	resp, err := h.gen.Ideas(req)
	if err != nil {
		return generationError(c, models.FeatureIdeas, err)
	}
	return jsonSuccess(c, resp)
}

// Search generates a search result from a JSON SearchRequest.
func (h *GenerateHandler) Search(c fiber.Ctx) error {
	var req models.SearchRequest
	if err := c.Bind().JSON(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	resp, err := h.gen.Search(req)
	if err != nil {
		return generationError(c, models.FeatureSearch, err)
	}
	return jsonSuccess(c, resp)
}

func generationError(c fiber.Ctx, feature string, err error) error {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		return jsonError(c, fiber.StatusBadRequest, verr.Message)
	}
	slog.Error("generation failed", "feature", feature, "error", err)
	return jsonError(c, fiber.StatusInternalServerError, middleware.GenerationFailedMessage)
}
