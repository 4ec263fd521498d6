package inventory

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/meridian-erp/meridian/internal/masterdata/shared"
	"github.com/meridian-erp/meridian/internal/platform/httpx"
	"github.com/meridian-erp/meridian/internal/rbac"
	internalShared "github.com/meridian-erp/meridian/internal/shared"
)

type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

func (h *Handler) MountRoutes(r chi.Router, guard rbac.Middleware) {
	r.Group(func(r chi.Router) {
		r.Use(guard.RequireAny(rbac.PermInventoryView))
		r.Get("/stock", h.List)
	})
	r.Group(func(r chi.Router) {
		r.Use(guard.RequireAll(rbac.PermInventoryEdit))
		r.Post("/stock/adjust", h.Adjust)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filters := shared.FiltersFromQuery(r, shared.DefaultLimit)
	if raw := r.URL.Query().Get("warehouse_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
			filters.WarehouseID = &id
		}
	}

	items, total, err := h.service.List(r.Context(), filters)
	if err != nil {
		h.logger.Error("list stock failed", "error", err)
		shared.RespondError(w, err)
		return
	}
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		h.logger.Error("stock summary failed", "error", err)
		shared.RespondError(w, err)
		return
	}

	p := internalShared.NewPagination(filters.Page, filters.Limit, total)
	httpx.List(w, items, summary, httpx.ListMeta{
		Page:       p.Page,
		PerPage:    p.PerPage,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	})
}

func (h *Handler) Adjust(w http.ResponseWriter, r *http.Request) {
	var adj Adjustment
	if err := httpx.DecodeJSON(r, &adj); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: invalid body", httpx.ErrValidation))
		return
	}
	if err := h.validate.Struct(adj); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %s", httpx.ErrValidation, err.Error()))
		return
	}
	level, err := h.service.Adjust(r.Context(), adj)
	if err != nil {
		shared.RespondError(w, err)
		return
	}
	httpx.OK(w, level)
}
