package engine

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/smartshop-labs/catalog-backend/internal/catalog"
)

func newEngineApp(t *testing.T) (*fiber.App, Repository) {
	t.Helper()
	repo := NewInMemoryRepository(SeedProducts())
	service := NewService(repo, "", "", 1)

	app := fiber.New()
	NewHandler(service, repo).RegisterPublicRoutes(app)
	return app, repo
}

func newProtectedEngineApp(t *testing.T, adminKey string) *fiber.App {
	t.Helper()
	repo := NewInMemoryRepository(SeedProducts())
	service := NewService(repo, "", "", 1)
	handler := NewHandler(service, repo)
	auth := NewAuthHandler(adminKey, "test-secret")

	app := fiber.New()
	handler.RegisterPublicRoutes(app)
	auth.RegisterPublicRoutes(app)
	auth.Protect(app)
	handler.RegisterProtectedRoutes(app)
	return app
}

func TestGetProductsEndpoint(t *testing.T) {
	app, _ := newEngineApp(t)

	res, err := app.Test(httptest.NewRequest("GET", "/api/products", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}

	var products []catalog.Product
	if err := json.NewDecoder(res.Body).Decode(&products); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(products) != len(SeedProducts()) {
		t.Fatalf("expected full seed, got %d products", len(products))
	}
}

func TestRecommendationsEndpoint(t *testing.T) {
	app, _ := newEngineApp(t)

	body := `{"preferences":{"categories":["Electronics"],"brands":[]},"browsing_history":[1]}`
	req := httptest.NewRequest("POST", "/api/recommendations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}

	var parsed struct {
		Recommendations []Recommendation `json:"recommendations"`
		Count           int              `json:"count"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if parsed.Count == 0 || parsed.Count != len(parsed.Recommendations) {
		t.Fatalf("unexpected payload: %+v", parsed)
	}
	for _, r := range parsed.Recommendations {
		if r.Product.ID == 1 {
			t.Fatal("browsed product must not be recommended")
		}
	}
}

func TestResetProductsGated(t *testing.T) {
	app, _ := newEngineApp(t)

	res, err := app.Test(httptest.NewRequest("POST", "/dev/reset-products", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403 without env gate, got %d", res.StatusCode)
	}
}

func TestResetProductsReseeds(t *testing.T) {
	t.Setenv("ALLOW_RESET_PRODUCTS", "1")
	app, repo := newEngineApp(t)

	res, err := app.Test(httptest.NewRequest("POST", "/dev/reset-products", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}

	all, _ := repo.List()
	if len(all) != len(SeedProducts()) {
		t.Fatalf("expected reseeded catalog, got %d products", len(all))
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := newProtectedEngineApp(t, "hunter2")

	req := httptest.NewRequest("POST", "/api/products", strings.NewReader(`{"name":"X","price":1}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusBadRequest && res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected auth failure, got %d", res.StatusCode)
	}
}

func TestLoginAndCreateProduct(t *testing.T) {
	app := newProtectedEngineApp(t, "hunter2")

	loginReq := httptest.NewRequest("POST", "/api/admin/login", strings.NewReader(`{"key":"hunter2"}`))
	loginReq.Header.Set("Content-Type", "application/json")
	loginRes, err := app.Test(loginReq)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if loginRes.StatusCode != 200 {
		t.Fatalf("expected 200 from login, got %d", loginRes.StatusCode)
	}

	var loginBody struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(loginRes.Body).Decode(&loginBody); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	if loginBody.Token == "" {
		t.Fatal("expected a token")
	}

	createReq := httptest.NewRequest("POST", "/api/products", strings.NewReader(`{"name":"Camp Stove","category":"Sports","price":89.5,"rating":4.4}`))
	createReq.Header.Set("Content-Type", "application/json")
	createReq.Header.Set("Authorization", "Bearer "+loginBody.Token)
	createRes, err := app.Test(createReq)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if createRes.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201 got %d", createRes.StatusCode)
	}

	var created catalog.Product
	if err := json.NewDecoder(createRes.Body).Decode(&created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if created.ID == 0 || created.Name != "Camp Stove" {
		t.Fatalf("unexpected created product: %+v", created)
	}
}

func TestLoginRejectsWrongKey(t *testing.T) {
	app := newProtectedEngineApp(t, "hunter2")

	req := httptest.NewRequest("POST", "/api/admin/login", strings.NewReader(`{"key":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", res.StatusCode)
	}
}

func TestCreateProductValidation(t *testing.T) {
	app := newProtectedEngineApp(t, "hunter2")

	loginReq := httptest.NewRequest("POST", "/api/admin/login", strings.NewReader(`{"key":"hunter2"}`))
	loginReq.Header.Set("Content-Type", "application/json")
	loginRes, _ := app.Test(loginReq)
	var loginBody struct {
		Token string `json:"token"`
	}
	json.NewDecoder(loginRes.Body).Decode(&loginBody)

	req := httptest.NewRequest("POST", "/api/products", strings.NewReader(`{"price":-5,"rating":9}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+loginBody.Token)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 got %d", res.StatusCode)
	}

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	for _, field := range []string{"name", "price", "rating"} {
		if body.Errors[field] == "" {
			t.Fatalf("expected validation error for %q, got %+v", field, body.Errors)
		}
	}
}
