package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/smartshop-labs/catalog-backend/internal/catalog"
	"github.com/smartshop-labs/catalog-backend/internal/config"
	"github.com/smartshop-labs/catalog-backend/internal/history"
	"github.com/smartshop-labs/catalog-backend/internal/notification"
	"github.com/smartshop-labs/catalog-backend/internal/obs"
	"github.com/smartshop-labs/catalog-backend/internal/preference"
	"github.com/smartshop-labs/catalog-backend/internal/recommend"
	"github.com/smartshop-labs/catalog-backend/internal/shell"
)

// main wires the session service: the catalog/preference/history stores, the
// upstream client, the recommendation service, the notification center and
// the shell that orchestrates them, then starts the HTTP server. The initial
// product load runs in the background so the API comes up even when the
// upstream is slow.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	obs.Setup(cfg.LogLevel, cfg.LogFormat)

	client := recommend.NewClient(recommend.ClientConfig{
		BaseURL: cfg.EngineBaseURL,
		Timeout: cfg.HTTPTimeout,
	})

	catalogStore := catalog.NewStore()
	prefStore := preference.NewStore()
	historyStore := history.NewStore(cfg.HistoryLimit)
	notifier := notification.NewCenter(cfg.NotificationTTL)
	recService := recommend.NewService(client, prefStore, historyStore, notifier)
	app := shell.NewApp(client, catalogStore, prefStore, historyStore, recService, notifier)

	go func() {
		if err := app.LoadProducts(context.Background()); err != nil {
			log.Warn().Err(err).Msg("initial catalog load failed, starting with an empty catalog")
		}
	}()

	srv := fiber.New()
	srv.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	srv.Use(obs.RequestLogger())

	shell.NewHandler(app).RegisterPublicRoutes(srv)
	preference.NewHandler(prefStore, catalogStore).RegisterPublicRoutes(srv)
	history.NewHandler(historyStore, catalogStore).RegisterPublicRoutes(srv)
	notification.NewHandler(notifier).RegisterPublicRoutes(srv)

	log.Info().Str("addr", cfg.APIAddr).Str("upstream", cfg.EngineBaseURL).Msg("api listening")
	if err := srv.Listen(cfg.APIAddr); err != nil {
		log.Fatal().Err(err).Msg("api stopped")
	}
}
