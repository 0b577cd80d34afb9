package api

import (
	"github.com/gofiber/fiber/v3"

	"medialens/internal/config"
)

// CategoriesHandler lists the categories offered by the idea form.
type CategoriesHandler struct {
	cfg *config.Config
}

// NewCategoriesHandler creates a new API categories handler.
func NewCategoriesHandler(cfg *config.Config) *CategoriesHandler {
	return &CategoriesHandler{cfg: cfg}
}

// List returns the category catalog.
func (h *CategoriesHandler) List(c fiber.Ctx) error {
	return jsonSuccess(c, h.cfg.Categories())
}
