package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/meridian-erp/meridian/internal/auth"
	"github.com/meridian-erp/meridian/internal/inventory"
	"github.com/meridian-erp/meridian/internal/invoicing"
	"github.com/meridian-erp/meridian/internal/masterdata/products"
	"github.com/meridian-erp/meridian/internal/masterdata/suppliers"
	"github.com/meridian-erp/meridian/internal/masterdata/warehouses"
	"github.com/meridian-erp/meridian/internal/notifications"
	"github.com/meridian-erp/meridian/internal/observability"
	"github.com/meridian-erp/meridian/internal/prefs"
	"github.com/meridian-erp/meridian/internal/rbac"
	"github.com/meridian-erp/meridian/internal/roles"
	"github.com/meridian-erp/meridian/internal/sales/customers"
	"github.com/meridian-erp/meridian/internal/sales/orders"
	"github.com/meridian-erp/meridian/internal/shared"
	"github.com/meridian-erp/meridian/internal/users"
	"github.com/meridian-erp/meridian/jobs"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger         *slog.Logger
	Config         *Config
	SessionManager *shared.SessionManager
	RBACMiddleware rbac.Middleware
	Metrics        *observability.Metrics

	AuthHandler          *auth.Handler
	SuppliersHandler     *suppliers.Handler
	WarehousesHandler    *warehouses.Handler
	ProductsHandler      *products.Handler
	CustomersHandler     *customers.Handler
	OrdersHandler        *orders.Handler
	InventoryHandler     *inventory.Handler
	InvoicesHandler      *invoicing.Handler
	UsersHandler         *users.Handler
	RolesHandler         *roles.Handler
	NotificationsHandler *notifications.Handler
	PrefsHandler         *prefs.Handler
	JobsHandler          *jobs.Handler
}

// NewRouter constructs the chi.Router for the admin console API.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:         params.Logger,
		Config:         params.Config,
		SessionManager: params.SessionManager,
		Metrics:        params.Metrics,
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

	r.Route("/auth", params.AuthHandler.MountRoutes)

	guard := params.RBACMiddleware
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/suppliers", func(r chi.Router) { params.SuppliersHandler.MountRoutes(r, guard) })
		r.Route("/warehouses", func(r chi.Router) { params.WarehousesHandler.MountRoutes(r, guard) })
		r.Route("/products", func(r chi.Router) { params.ProductsHandler.MountRoutes(r, guard) })
		r.Route("/customers", func(r chi.Router) { params.CustomersHandler.MountRoutes(r, guard) })
		r.Route("/orders", func(r chi.Router) { params.OrdersHandler.MountRoutes(r, guard) })
		r.Route("/inventory", func(r chi.Router) { params.InventoryHandler.MountRoutes(r, guard) })
		r.Route("/invoices", func(r chi.Router) { params.InvoicesHandler.MountRoutes(r, guard) })
		r.Route("/users", func(r chi.Router) { params.UsersHandler.MountRoutes(r, guard) })
		r.Route("/roles", func(r chi.Router) { params.RolesHandler.MountRoutes(r, guard) })
		r.Route("/notifications", params.NotificationsHandler.MountRoutes)
		r.Route("/prefs", params.PrefsHandler.MountRoutes)
	})

	if params.JobsHandler != nil {
		r.Route("/jobs", params.JobsHandler.MountRoutes)
	}

	return r
}
