package prefs

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meridian-erp/meridian/internal/listview"
	"github.com/meridian-erp/meridian/internal/platform/httpx"
	"github.com/meridian-erp/meridian/internal/shared"
)

// ResourceColumns describes the column catalogue of one list page: the
// available columns, the default selection and the page-specific cap.
type ResourceColumns struct {
	Columns  []listview.Column
	Defaults []string
	Max      int
}

// Handler exposes the per-user column preference endpoints.
type Handler struct {
	logger   *slog.Logger
	store    *Store
	registry map[string]ResourceColumns
}

// NewHandler constructs a Handler over the registered resource catalogues.
func NewHandler(logger *slog.Logger, store *Store, registry map[string]ResourceColumns) *Handler {
	return &Handler{logger: logger, store: store, registry: registry}
}

// MountRoutes registers preference routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/{resource}", h.Get)
	r.Put("/{resource}", h.Save)
	r.Delete("/{resource}", h.Reset)
}

type prefsResponse struct {
	Available []listview.Column `json:"available"`
	Committed []string          `json:"committed"`
	Max       int               `json:"max"`
}

type savePayload struct {
	Columns []string `json:"columns"`
}

// Get returns the available catalogue plus the user's committed selection,
// falling back to the resource defaults when nothing was saved.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	sess := shared.SessionFromContext(r.Context())
	if sess == nil {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}
	resource := chi.URLParam(r, "resource")
	catalogue, ok := h.registry[resource]
	if !ok {
		httpx.RespondError(w, httpx.ErrNotFound)
		return
	}

	committed, err := h.store.Get(r.Context(), sess.UserID, resource)
	if err != nil {
		h.logger.Error("load column prefs", "error", err, "resource", resource)
		httpx.RespondError(w, err)
		return
	}
	if committed == nil {
		committed = catalogue.Defaults
	}
	httpx.OK(w, prefsResponse{Available: catalogue.Columns, Committed: committed, Max: catalogue.Max})
}

// Save persists a committed selection after checking every key against the
// catalogue and enforcing the cap.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	sess := shared.SessionFromContext(r.Context())
	if sess == nil {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}
	resource := chi.URLParam(r, "resource")
	catalogue, ok := h.registry[resource]
	if !ok {
		httpx.RespondError(w, httpx.ErrNotFound)
		return
	}

	var payload savePayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: invalid body", httpx.ErrValidation))
		return
	}
	for _, key := range payload.Columns {
		if !knownColumn(catalogue.Columns, key) {
			httpx.RespondError(w, fmt.Errorf("%w: unknown column %q", httpx.ErrValidation, key))
			return
		}
	}

	err := h.store.Save(r.Context(), sess.UserID, resource, payload.Columns, catalogue.Max)
	if errors.Is(err, ErrTooManyColumns) {
		httpx.RespondError(w, fmt.Errorf("%w: at most %d columns", httpx.ErrValidation, catalogue.Max))
		return
	}
	if err != nil {
		h.logger.Error("save column prefs", "error", err, "resource", resource)
		httpx.RespondError(w, err)
		return
	}
	httpx.OK(w, prefsResponse{Available: catalogue.Columns, Committed: payload.Columns, Max: catalogue.Max})
}

// Reset drops the saved selection so the resource defaults apply again.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	sess := shared.SessionFromContext(r.Context())
	if sess == nil {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}
	resource := chi.URLParam(r, "resource")
	catalogue, ok := h.registry[resource]
	if !ok {
		httpx.RespondError(w, httpx.ErrNotFound)
		return
	}
	if err := h.store.Reset(r.Context(), sess.UserID, resource); err != nil {
		h.logger.Error("reset column prefs", "error", err, "resource", resource)
		httpx.RespondError(w, err)
		return
	}
	httpx.OK(w, prefsResponse{Available: catalogue.Columns, Committed: catalogue.Defaults, Max: catalogue.Max})
}

func knownColumn(cols []listview.Column, key string) bool {
	for _, col := range cols {
		if col.Key == key {
			return true
		}
	}
	return false
}
