package auth

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/meridian-erp/meridian/internal/platform/httpx"
	"github.com/meridian-erp/meridian/internal/shared"
)

// Handler wires HTTP endpoints for authentication flows.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

// MountRoutes registers auth routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
	r.Get("/me", h.Me)
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type sessionPayload struct {
	Token     string   `json:"token"`
	UserID    int64    `json:"user_id"`
	Email     string   `json:"email"`
	Roles     []string `json:"roles"`
	ExpiresAt string   `json:"expires_at"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var input loginInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: invalid body", httpx.ErrValidation))
		return
	}
	if err := h.validate.Struct(input); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %s", httpx.ErrValidation, err.Error()))
		return
	}

	sess, err := h.service.Login(r.Context(), input.Email, input.Password)
	if err != nil {
		h.logger.Warn("login rejected", "email", input.Email)
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}
	httpx.OK(w, sessionView(sess))
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	sess := shared.SessionFromContext(r.Context())
	if err := h.service.Logout(r.Context(), sess); err != nil {
		h.logger.Warn("logout failed", "error", err)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	sess := shared.SessionFromContext(r.Context())
	if sess == nil {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}
	httpx.OK(w, sessionView(sess))
}

func sessionView(sess *shared.Session) sessionPayload {
	return sessionPayload{
		Token:     sess.Token,
		UserID:    sess.UserID,
		Email:     sess.Email,
		Roles:     sess.Roles,
		ExpiresAt: sess.ExpiresAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}
