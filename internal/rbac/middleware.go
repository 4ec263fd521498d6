package rbac

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/meridian-erp/meridian/internal/platform/httpx"
	"github.com/meridian-erp/meridian/internal/shared"
)

// PermissionSource resolves the permissions granted to a user.
type PermissionSource interface {
	EffectivePermissions(ctx context.Context, userID int64) ([]string, error)
}

// Middleware wires RBAC authorization helpers for HTTP handlers.
type Middleware struct {
	Service PermissionSource
	Logger  *slog.Logger
}

// RequireAny ensures the current user has at least one of the required permissions.
func (m Middleware) RequireAny(perms ...string) func(http.Handler) http.Handler {
	normalized := normalizePermissions(perms)
	return m.guard(normalized, hasAnyPermission)
}

// RequireAll ensures the current user has all required permissions.
func (m Middleware) RequireAll(perms ...string) func(http.Handler) http.Handler {
	normalized := normalizePermissions(perms)
	return m.guard(normalized, hasAllPermissions)
}

func (m Middleware) guard(required []string, allow func(granted, required []string) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(required) == 0 {
				next.ServeHTTP(w, r)
				return
			}
			sess := shared.SessionFromContext(r.Context())
			if sess == nil || sess.UserID <= 0 {
				httpx.RespondError(w, httpx.ErrUnauthorized)
				return
			}
			granted, err := m.Service.EffectivePermissions(r.Context(), sess.UserID)
			if err != nil {
				if m.Logger != nil {
					m.Logger.Error("rbac permission lookup", slog.Any("error", err))
				}
				httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
				return
			}
			if allow(granted, required) {
				next.ServeHTTP(w, r)
				return
			}
			httpx.RespondError(w, httpx.ErrForbidden)
		})
	}
}

func normalizePermissions(perms []string) []string {
	unique := make(map[string]struct{}, len(perms))
	for _, p := range perms {
		p = strings.TrimSpace(strings.ToLower(p))
		if p == "" {
			continue
		}
		unique[p] = struct{}{}
	}
	normalized := make([]string, 0, len(unique))
	for p := range unique {
		normalized = append(normalized, p)
	}
	return normalized
}

func hasAnyPermission(granted, required []string) bool {
	set := permissionSet(granted)
	for _, r := range required {
		if _, ok := set[r]; ok {
			return true
		}
	}
	return false
}

func hasAllPermissions(granted, required []string) bool {
	set := permissionSet(granted)
	for _, r := range required {
		if _, ok := set[r]; !ok {
			return false
		}
	}
	return true
}

func permissionSet(granted []string) map[string]struct{} {
	set := make(map[string]struct{}, len(granted))
	for _, p := range granted {
		set[strings.ToLower(p)] = struct{}{}
	}
	return set
}
