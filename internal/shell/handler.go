package shell

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/smartshop-labs/catalog-backend/internal/catalog"
	"github.com/smartshop-labs/catalog-backend/internal/recommend"
)

// Handler serves the shell-owned endpoints: status, the visible catalog and
// the recommendation flow.
type Handler struct {
	app *App
}

func NewHandler(app *App) *Handler {
	return &Handler{app: app}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/status", h.getStatus)
	app.Get("/api/products", h.getProducts)
	app.Post("/api/products/refresh", h.refreshProducts)
	app.Get("/api/recommendations", h.getRecommendations)
	app.Post("/api/recommendations", h.requestRecommendations)
}

func (h *Handler) getStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"state":    h.app.Status(),
		"products": h.app.Catalog.Len(),
	})
}

// getProducts recomputes the visible catalog from the live product list, the
// search text and the preference snapshot, then applies the requested sort.
func (h *Handler) getProducts(c *fiber.Ctx) error {
	snap := h.app.Prefs.Snapshot()

	minRating := float64(0)
	if v := c.QueryFloat("minRating"); v > 0 {
		minRating = v
	}

	q := catalog.Query{
		Search:     c.Query("search"),
		Categories: snap.Categories,
		Brands:     snap.Brands,
		PriceRange: catalog.PriceRange(c.Query("priceRange", string(catalog.PriceRangeAll))),
		MinRating:  minRating,
	}

	visible := catalog.Filter(h.app.Catalog.List(), q)
	catalog.Sort(visible, catalog.SortKey(c.Query("sort", string(catalog.SortFeatured))), h.app.History.Favorites())
	return c.JSON(visible)
}

func (h *Handler) refreshProducts(c *fiber.Ctx) error {
	if err := h.app.LoadProducts(c.Context()); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"state": h.app.Status(), "products": h.app.Catalog.Len()})
}

func (h *Handler) getRecommendations(c *fiber.Ctx) error {
	return c.JSON(h.app.Recs.Current())
}

func (h *Handler) requestRecommendations(c *fiber.Ctx) error {
	items, err := h.app.GetRecommendations(c.Context())
	if err != nil {
		switch {
		case errors.Is(err, ErrBusy):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "recommendations are already loading"})
		case errors.Is(err, recommend.ErrNoSignal):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "select at least one category or browse some products first"})
		default:
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(fiber.Map{"recommendations": items, "count": len(items)})
}
