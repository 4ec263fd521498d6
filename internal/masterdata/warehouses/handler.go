package warehouses

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/meridian-erp/meridian/internal/masterdata/shared"
	"github.com/meridian-erp/meridian/internal/platform/httpx"
	internalShared "github.com/meridian-erp/meridian/internal/shared"
	"github.com/meridian-erp/meridian/internal/rbac"
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
		r.Use(guard.RequireAny(rbac.PermMasterView))
		r.Get("/", h.List)
		r.Get("/{id}", h.Show)
	})
	r.Group(func(r chi.Router) {
		r.Use(guard.RequireAll(rbac.PermMasterEdit))
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

type warehousePayload struct {
	Code     string `json:"code" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Location string `json:"location"`
	Capacity int    `json:"capacity" validate:"gte=0"`
	IsActive bool   `json:"is_active"`
}

func (p warehousePayload) toModel() Warehouse {
	return Warehouse{
		Code:     p.Code,
		Name:     p.Name,
		Location: p.Location,
		Capacity: p.Capacity,
		IsActive: p.IsActive,
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filters := shared.FiltersFromQuery(r, shared.DefaultLimit)

	items, total, err := h.service.List(r.Context(), filters)
	if err != nil {
		h.logger.Error("list warehouses failed", "error", err)
		shared.RespondError(w, err)
		return
	}
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		h.logger.Error("warehouse summary failed", "error", err)
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

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		shared.RespondError(w, shared.ErrInvalidID)
		return
	}
	warehouse, err := h.service.Get(r.Context(), id)
	if err != nil {
		shared.RespondError(w, err)
		return
	}
	httpx.OK(w, warehouse)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var payload warehousePayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: invalid body", httpx.ErrValidation))
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %s", httpx.ErrValidation, err.Error()))
		return
	}
	created, err := h.service.Create(r.Context(), payload.toModel())
	if err != nil {
		shared.RespondError(w, err)
		return
	}
	httpx.Created(w, created)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		shared.RespondError(w, shared.ErrInvalidID)
		return
	}
	var payload warehousePayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: invalid body", httpx.ErrValidation))
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %s", httpx.ErrValidation, err.Error()))
		return
	}
	if err := h.service.Update(r.Context(), id, payload.toModel()); err != nil {
		shared.RespondError(w, err)
		return
	}
	updated, err := h.service.Get(r.Context(), id)
	if err != nil {
		shared.RespondError(w, err)
		return
	}
	httpx.OK(w, updated)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		shared.RespondError(w, shared.ErrInvalidID)
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		shared.RespondError(w, err)
		return
	}
	httpx.OK(w, map[string]any{"deleted": id})
}
