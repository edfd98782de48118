package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/stocksheet/stocksheet/internal/catalog/products"
	"github.com/stocksheet/stocksheet/internal/dashboard"
	"github.com/stocksheet/stocksheet/internal/masterdata/suppliers"
	"github.com/stocksheet/stocksheet/internal/observability"
	"github.com/stocksheet/stocksheet/internal/procurement"
	"github.com/stocksheet/stocksheet/internal/records"
	"github.com/stocksheet/stocksheet/internal/sales"
	"github.com/stocksheet/stocksheet/internal/settings"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger *slog.Logger
	Config *Config

	RecordsHandler   *records.Handler
	ProductsHandler  *products.Handler
	SalesHandler     *sales.Handler
	PurchasesHandler *procurement.Handler
	SuppliersHandler *suppliers.Handler
	SettingsHandler  *settings.Handler
	DashboardHandler *dashboard.Handler

	Metrics *observability.Metrics
}

// NewRouter constructs the chi.Router with the service defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Mount("/records", params.RecordsHandler.Routes())
		r.Mount("/products", params.ProductsHandler.Routes())
		r.Mount("/sales", params.SalesHandler.Routes())
		r.Mount("/purchases", params.PurchasesHandler.Routes())
		r.Mount("/suppliers", params.SuppliersHandler.Routes())
		r.Mount("/settings", params.SettingsHandler.Routes())
		r.Mount("/dashboard", params.DashboardHandler.Routes())
		r.Post("/admin/init", params.RecordsHandler.InitAll)
	})

	// Compatibility alias for clients still calling the old script endpoint.
	r.Mount("/exec", params.RecordsHandler.Routes())

	return r
}
