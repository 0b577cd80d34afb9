package handlers

import (
	"github.com/gofiber/fiber/v3"

	"medialens/internal/models"
	"medialens/internal/render"
)

// Search handles the search box.
func (h *PageHandler) Search(c fiber.Ctx) error {
	var req models.SearchRequest
	if err := c.Bind().Form(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form submission")
	}

	resp, err := h.gen.Search(req)
	if err != nil {
		return generationError(c, models.FeatureSearch, err)
	}

	body, err := render.Markdown(resp.Content)
	if err != nil {
		return generationError(c, models.FeatureSearch, err)
	}

	if isHTMX(c) {
		return c.Render("partials/search_result", fiber.Map{
			"Search":     resp,
			"SearchHTML": body,
		}, "")
	}

	data := h.pageData()
	data["SearchForm"] = req
	data["Search"] = resp
	data["SearchHTML"] = body
	return c.Render("index", data)
}
