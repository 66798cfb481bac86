package history

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/smartshop-labs/catalog-backend/internal/catalog"
)

// Handler serves the browsing-history API: recording views, the derived
// filtered/sorted view, favorites, insights and the export download.
type Handler struct {
	store   *Store
	catalog *catalog.Store
}

func NewHandler(store *Store, cat *catalog.Store) *Handler {
	return &Handler{store: store, catalog: cat}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/history", h.getHistory)
	app.Post("/api/history/view", h.recordView)
	app.Post("/api/history/favorites/toggle", h.toggleFavorite)
	app.Delete("/api/history/:id<[0-9]+>", h.removeEntry)
	app.Get("/api/history/insights", h.getInsights)
	app.Get("/api/history/export", h.exportHistory)
}

func viewOptionsFromQuery(c *fiber.Ctx) ViewOptions {
	return ViewOptions{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Sort:     c.Query("sort", SortRecent),
	}
}

func (h *Handler) getHistory(c *fiber.Ctx) error {
	return c.JSON(h.store.Entries(h.catalog, viewOptionsFromQuery(c)))
}

type viewRequest struct {
	ProductID int `json:"productId"`
}

func (h *Handler) recordView(c *fiber.Ctx) error {
	payload := new(viewRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId"})
	}
	if _, err := h.catalog.GetByID(payload.ProductID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	}

	h.store.Record(payload.ProductID)
	return c.JSON(fiber.Map{"productId": payload.ProductID, "history": h.store.IDs()})
}

func (h *Handler) toggleFavorite(c *fiber.Ctx) error {
	payload := new(viewRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId"})
	}

	fav := h.store.ToggleFavorite(payload.ProductID)
	return c.JSON(fiber.Map{"productId": payload.ProductID, "favorite": fav})
}

func (h *Handler) removeEntry(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	// Only the favorite flag is cleared here; the identifier stays in the
	// history list.
	h.store.Remove(id)
	return c.JSON(fiber.Map{"productId": id, "favorite": false})
}

func (h *Handler) getInsights(c *fiber.Ctx) error {
	entries := h.store.Entries(h.catalog, ViewOptions{Sort: SortRecent})
	insights, ok := DeriveInsights(entries)
	if !ok {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(insights)
}

func (h *Handler) exportHistory(c *fiber.Ctx) error {
	entries := h.store.Entries(h.catalog, viewOptionsFromQuery(c))
	doc := BuildExport(entries, time.Now())

	c.Set(fiber.HeaderContentDisposition, `attachment; filename="browsing-history.json"`)
	return c.JSON(doc)
}
