package rbac

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meridian-erp/meridian/internal/shared"
)

type staticPerms struct {
	granted []string
}

func (s staticPerms) EffectivePermissions(ctx context.Context, userID int64) ([]string, error) {
	return s.granted, nil
}

func serve(t *testing.T, mw func(http.Handler) http.Handler, sess *shared.Session) *httptest.ResponseRecorder {
	t.Helper()
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if sess != nil {
		req = req.WithContext(shared.ContextWithSession(req.Context(), sess))
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestGuardRejectsAnonymous(t *testing.T) {
	m := Middleware{Service: staticPerms{granted: []string{PermMasterView}}}
	rr := serve(t, m.RequireAny(PermMasterView), nil)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGuardRejectsMissingPermission(t *testing.T) {
	m := Middleware{Service: staticPerms{granted: []string{PermMasterView}}}
	sess := &shared.Session{UserID: 1}
	rr := serve(t, m.RequireAll(PermMasterView, PermMasterEdit), sess)
	require.Equal(t, http.StatusForbidden, rr.Code)
}

func TestGuardAllowsAnyOf(t *testing.T) {
	m := Middleware{Service: staticPerms{granted: []string{PermSalesView}}}
	sess := &shared.Session{UserID: 1}
	rr := serve(t, m.RequireAny(PermMasterView, PermSalesView), sess)
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestGuardNormalizesCase(t *testing.T) {
	m := Middleware{Service: staticPerms{granted: []string{"Sales.View"}}}
	sess := &shared.Session{UserID: 1}
	rr := serve(t, m.RequireAll("SALES.VIEW"), sess)
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestGuardWithNoRequirementsPassesThrough(t *testing.T) {
	m := Middleware{Service: staticPerms{}}
	rr := serve(t, m.RequireAny(), nil)
	require.Equal(t, http.StatusOK, rr.Code)
}
