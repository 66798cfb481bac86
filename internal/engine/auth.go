package engine

import (
	"time"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/golang-jwt/jwt/v4"
)

// AuthHandler issues admin tokens for the protected catalog routes. There
// are no user accounts: a single shared admin key exchanges for a short
// lived JWT.
type AuthHandler struct {
	adminKey  string
	jwtSecret string
}

func NewAuthHandler(adminKey, jwtSecret string) *AuthHandler {
	return &AuthHandler{adminKey: adminKey, jwtSecret: jwtSecret}
}

func (h *AuthHandler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/admin/login", h.login)
}

// Protect installs the JWT middleware; register it after the public routes
// and before the protected ones.
func (h *AuthHandler) Protect(app *fiber.App) {
	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(h.jwtSecret),
	}))
}

type loginRequest struct {
	Key string `json:"key"`
}

func (h *AuthHandler) login(c *fiber.Ctx) error {
	payload := new(loginRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if h.adminKey == "" || payload.Key != h.adminKey {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "invalid admin key"})
	}

	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token"})
	}

	return c.JSON(fiber.Map{"token": signed})
}
