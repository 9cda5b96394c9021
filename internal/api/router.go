package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	apimiddleware "github.com/perlow/catalog-api/internal/api/middleware"
	"github.com/perlow/catalog-api/internal/metrics"
	"github.com/perlow/catalog-api/internal/store"
)

// NewRouter creates and configures the application router with all
// routes and middleware. The catalog is the read-only seed store shared
// by the item handlers.
func NewRouter(catalog *store.Catalog, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Standard middleware chain
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.Trace)
	r.Use(apimiddleware.Metrics)

	users := NewUserHandler(logger)
	items := NewItemHandler(catalog, logger)
	site := NewSiteHandler(logger)
	offers := NewOfferHandler(logger)

	r.Get("/", site.Home)
	r.Post("/login", users.Login)
	r.Post("/user", users.CreateUser)
	r.Get("/models/{model_name}", site.GetModel)
	r.Get("/files/*", site.ReadFile)

	// The listing and single-item routes share a prefix. chi resolves
	// by path-template specificity, not declaration order: the static
	// "/items/" path takes the listing and the parameter route takes
	// everything else.
	r.Get("/items/", items.ListItems)
	r.Post("/items/", items.CreateItem)
	r.Get("/items/{item_id}", items.ReadItem)
	r.Put("/items/{item_id}", items.UpdateItem)

	r.Get("/users/{user_id}/items/{item_id}", items.ReadUserItem)

	r.Post("/offers/", offers.CreateOffer)
	r.Post("/images/multiple/", offers.CreateMultipleImages)

	// Operational endpoints
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.Error("Failed to write health check response", "error", err)
		}
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	return r
}
