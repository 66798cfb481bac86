package preference

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartshop-labs/catalog-backend/internal/catalog"
)

// Handler exposes the preference state over HTTP. Options are derived from
// the live catalog on every request, so newly loaded products show up
// immediately.
type Handler struct {
	store   *Store
	catalog *catalog.Store
}

func NewHandler(store *Store, cat *catalog.Store) *Handler {
	return &Handler{store: store, catalog: cat}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/preferences", h.getPreferences)
	app.Get("/api/products/options", h.getOptions)
	app.Post("/api/preferences/categories/toggle", h.toggleCategory)
	app.Post("/api/preferences/brands/toggle", h.toggleBrand)
	app.Put("/api/preferences/max-price", h.setMaxPrice)
}

func (h *Handler) getPreferences(c *fiber.Ctx) error {
	return c.JSON(h.store.Snapshot())
}

func (h *Handler) getOptions(c *fiber.Ctx) error {
	return c.JSON(DeriveOptions(h.catalog.List()))
}

type toggleRequest struct {
	Category string `json:"category"`
	Brand    string `json:"brand"`
}

func (h *Handler) toggleCategory(c *fiber.Ctx) error {
	payload := new(toggleRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "category is required"})
	}
	return c.JSON(h.store.ToggleCategory(payload.Category))
}

func (h *Handler) toggleBrand(c *fiber.Ctx) error {
	payload := new(toggleRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Brand == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "brand is required"})
	}
	return c.JSON(h.store.ToggleBrand(payload.Brand))
}

type maxPriceRequest struct {
	MaxPrice float64 `json:"maxPrice"`
}

func (h *Handler) setMaxPrice(c *fiber.Ctx) error {
	payload := new(maxPriceRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(h.store.SetMaxPrice(payload.MaxPrice))
}
