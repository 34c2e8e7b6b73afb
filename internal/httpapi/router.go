package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tovrr/belmobile-backend/internal/api"
	"github.com/tovrr/belmobile-backend/internal/catalog"
	"github.com/tovrr/belmobile-backend/internal/order"
	"github.com/tovrr/belmobile-backend/internal/quote"
	"github.com/tovrr/belmobile-backend/internal/shipping"
	"github.com/tovrr/belmobile-backend/internal/track"
	"github.com/tovrr/belmobile-backend/pkg/config"
	"github.com/tovrr/belmobile-backend/pkg/metrics"
)

type Dependencies struct {
	Cfg     config.Config
	DB      *pgxpool.Pool
	Metrics *metrics.ServerMetrics
}

func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	ordersRepo := order.NewRepository(deps.DB)
	catalogRepo := catalog.NewRepository(deps.DB)
	quotesRepo := quote.NewRepository(deps.DB)

	orderHandlers := order.Handlers{DB: deps.DB, Orders: ordersRepo}
	catalogHandlers := catalog.Handlers{Repo: catalogRepo}
	quoteHandlers := quote.Handlers{Quotes: quotesRepo, Catalogs: catalogRepo, Orders: ordersRepo}
	shippingHandler := shipping.Handler{Cfg: deps.Cfg, DB: deps.DB}
	trackHandlers := track.Handlers{Cfg: deps.Cfg, DB: deps.DB, Orders: ordersRepo}

	// v1
	r.Route("/v1", func(r chi.Router) {
		// Public storefront APIs (quote forms, order tracking).
		r.Group(func(r chi.Router) {
			r.Use(api.CORSMiddleware(api.CORSOptions{
				AllowedOrigins: deps.Cfg.TrackAllowedOrigins,
				AllowedMethods: []string{"GET", "POST", "OPTIONS"},
				AllowedHeaders: []string{"Content-Type"},
				MaxAgeSeconds:  600,
			}))

			r.Post("/quotes/buyback", quoteHandlers.Buyback)
			r.Post("/quotes/repair", quoteHandlers.Repair)
			r.Get("/quotes/{id}", quoteHandlers.Get)
			r.Post("/quotes/{id}/confirm", quoteHandlers.Confirm)

			r.Get("/track/{token}", trackHandlers.View)
			r.Get("/track/{token}/events", trackHandlers.Events)
		})

		// Staff admin APIs
		r.Group(func(r chi.Router) {
			r.Use(api.StaffAuth(deps.Cfg))

			r.Get("/orders", orderHandlers.List)
			r.Get("/orders/{id}", orderHandlers.Get)
			r.Patch("/orders/{id}/status", orderHandlers.PatchStatus)
			r.Get("/orders/{id}/events", orderHandlers.Events)
			r.With(api.RequireRole("admin")).Post("/orders/{id}/admin/override", orderHandlers.AdminOverride)

			r.Get("/statuses", orderHandlers.Statuses)

			r.Get("/catalogs", catalogHandlers.List)
			r.With(api.RequireRole("admin")).Put("/catalogs/{device_id}", catalogHandlers.Put)
		})

		// Webhooks
		r.Post("/webhooks/shipping", shippingHandler.ServeHTTP)
	})

	return r
}
