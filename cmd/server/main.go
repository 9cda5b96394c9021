// Command server runs the catalog API: a fixed table of validated HTTP
// endpoints over two read-only seed structures.
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/perlow/catalog-api/internal/api"
	"github.com/perlow/catalog-api/internal/config"
	"github.com/perlow/catalog-api/internal/platform/logger"
	"github.com/perlow/catalog-api/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for local development; absence is not an error.
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg.Server)
	log.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	// The only process state: seeded once, read-only from here on.
	catalog := store.NewSeededCatalog()

	router := api.NewRouter(catalog, log)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	return startHTTPServer(cfg.Server, c.Handler(router), log)
}
