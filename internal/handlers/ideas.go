package handlers

import (
	"github.com/gofiber/fiber/v3"

	"medialens/internal/models"
	"medialens/internal/render"
)

// Ideas handles the content-idea form.
func (h *PageHandler) Ideas(c fiber.Ctx) error {
	var req models.IdeaRequest
	if err := c.Bind().Form(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form submission")
	}

	resp, err := h.gen.Ideas(req)
	if err != nil {
		return generationError(c, models.FeatureIdeas, err)
	}

	body, err := render.Markdown(resp.Content)
	if err != nil {
		return generationError(c, models.FeatureIdeas, err)
	}

	if isHTMX(c) {
		return c.Render("partials/idea_result", fiber.Map{
			"Idea":     resp,
			"IdeaHTML": body,
		}, "")
	}

	data := h.pageData()
	data["IdeaForm"] = req
	data["Idea"] = resp
	data["IdeaHTML"] = body
	return c.Render("index", data)
}
