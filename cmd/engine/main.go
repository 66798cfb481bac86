package main

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/smartshop-labs/catalog-backend/internal/config"
	"github.com/smartshop-labs/catalog-backend/internal/engine"
	"github.com/smartshop-labs/catalog-backend/internal/obs"
)

// main wires the recommendation engine: product repository (Postgres when
// DATABASE_URL is set, seeded in-memory otherwise), the recommendation
// service and the HTTP surface with its JWT-protected admin routes.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	obs.Setup(cfg.LogLevel, cfg.LogFormat)

	repo := buildRepository(cfg)
	service := engine.NewService(repo, cfg.OpenAIKey, cfg.OpenAIModel, time.Now().UnixNano())

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(obs.RequestLogger())

	handler := engine.NewHandler(service, repo)
	auth := engine.NewAuthHandler(cfg.AdminKey, cfg.JWTSecret)

	handler.RegisterPublicRoutes(app)
	auth.RegisterPublicRoutes(app)

	auth.Protect(app)
	handler.RegisterProtectedRoutes(app)

	log.Info().Str("addr", cfg.EngineAddr).Bool("llm", cfg.OpenAIKey != "").Msg("engine listening")
	if err := app.Listen(cfg.EngineAddr); err != nil {
		log.Fatal().Err(err).Msg("engine stopped")
	}
}

func buildRepository(cfg config.Config) engine.Repository {
	if cfg.DatabaseURL == "" {
		log.Info().Msg("no DATABASE_URL set, using in-memory catalog with sample data")
		return engine.NewInMemoryRepository(engine.SeedProducts())
	}

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("opening database failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("database unreachable")
	}
	return engine.NewPostgresRepository(db)
}
