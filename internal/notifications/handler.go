package notifications

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/meridian-erp/meridian/internal/platform/httpx"
	"github.com/meridian-erp/meridian/internal/shared"
)

type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers the feed endpoints. Any signed-in user may read
// their own feed, so no permission guard beyond the session check.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.Feed)
	r.Post("/{id}/read", h.MarkRead)
	r.Post("/read-all", h.MarkAllRead)
}

func (h *Handler) Feed(w http.ResponseWriter, r *http.Request) {
	sess := shared.SessionFromContext(r.Context())
	if sess == nil {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}
	feed, err := h.service.Feed(r.Context(), sess.UserID)
	if err != nil {
		h.logger.Error("load feed failed", "user", sess.UserID, "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.OK(w, feed)
}

func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	sess := shared.SessionFromContext(r.Context())
	if sess == nil {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	if err := h.service.MarkRead(r.Context(), sess.UserID, id); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	sess := shared.SessionFromContext(r.Context())
	if sess == nil {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}
	if err := h.service.MarkAllRead(r.Context(), sess.UserID); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
