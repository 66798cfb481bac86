package notification

import "github.com/gofiber/fiber/v2"

// Handler exposes the active notifications so a UI can poll and render them.
type Handler struct {
	center *Center
}

func NewHandler(center *Center) *Handler {
	return &Handler{center: center}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/notifications", h.getNotifications)
	app.Delete("/api/notifications/:id", h.dismiss)
}

func (h *Handler) getNotifications(c *fiber.Ctx) error {
	return c.JSON(h.center.Active())
}

func (h *Handler) dismiss(c *fiber.Ctx) error {
	h.center.Dismiss(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}
