package suppliers

import (
	"github.com/go-chi/chi/v5"

	"github.com/meridian-erp/meridian/internal/rbac"
)

func (h *Handler) MountRoutes(r chi.Router, guard rbac.Middleware) {
	r.Group(func(r chi.Router) {
		r.Use(guard.RequireAny("master.view"))
		r.Get("/", h.List)
		r.Get("/{id}", h.Show)
	})
	r.Group(func(r chi.Router) {
		r.Use(guard.RequireAll("master.edit"))
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}
