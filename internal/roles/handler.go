package roles

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
		r.Use(guard.RequireAll(rbac.PermRolesManage))
		r.Get("/", h.List)
		r.Get("/{id}", h.Show)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	roles, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list roles failed", "error", err)
		shared.RespondError(w, err)
		return
	}
	httpx.OK(w, roles)
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		shared.RespondError(w, err)
		return
	}
	role, err := h.service.Get(r.Context(), id)
	if err != nil {
		shared.RespondError(w, err)
		return
	}
	httpx.OK(w, role)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	input, err := h.decode(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	role, err := h.service.Create(r.Context(), input)
	if err != nil {
		shared.RespondError(w, err)
		return
	}
	httpx.Created(w, role)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		shared.RespondError(w, err)
		return
	}
	input, err := h.decode(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	role, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		shared.RespondError(w, err)
		return
	}
	httpx.OK(w, role)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		shared.RespondError(w, err)
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		shared.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) decode(r *http.Request) (RoleInput, error) {
	var input RoleInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		return RoleInput{}, fmt.Errorf("%w: invalid body", httpx.ErrValidation)
	}
	if err := h.validate.Struct(input); err != nil {
		return RoleInput{}, fmt.Errorf("%w: %s", httpx.ErrValidation, err.Error())
	}
	return input, nil
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, shared.ErrInvalidID
	}
	return id, nil
}
