package suppliers

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
)

type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

type supplierPayload struct {
	Code     string `json:"code" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Address  string `json:"address"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
	IsActive bool   `json:"is_active"`
}

func (p supplierPayload) toModel() Supplier {
	return Supplier{
		Code:     p.Code,
		Name:     p.Name,
		Address:  p.Address,
		Email:    p.Email,
		Phone:    p.Phone,
		IsActive: p.IsActive,
	}
}

// List serves the supplier table: one page of rows plus the precomputed
// summary in the standard envelope.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filters := shared.FiltersFromQuery(r, shared.DefaultLimit)

	items, total, err := h.service.List(r.Context(), filters)
	if err != nil {
		h.logger.Error("list suppliers failed", "error", err)
		shared.RespondError(w, err)
		return
	}
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		h.logger.Error("supplier summary failed", "error", err)
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

	supplier, err := h.service.Get(r.Context(), id)
	if err != nil {
		shared.RespondError(w, err)
		return
	}
	httpx.OK(w, supplier)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var payload supplierPayload
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

	var payload supplierPayload
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
