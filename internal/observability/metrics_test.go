package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestMetricsMiddlewareRecordsRequest(t *testing.T) {
	metrics := NewMetrics()

	handler := metrics.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	routeCtx := chi.NewRouteContext()
	routeCtx.RoutePatterns = append(routeCtx.RoutePatterns, "/test")

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx)
	req = req.WithContext(ctx)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusTeapot {
		t.Fatalf("expected status %d, got %d", http.StatusTeapot, rr.Code)
	}

	mr := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(mr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if mr.Code != http.StatusOK {
		t.Fatalf("unexpected metrics status: %d", mr.Code)
	}
	body := mr.Body.String()
	if !strings.Contains(body, "meridian_http_requests_total") {
		t.Fatalf("expected body to contain meridian_http_requests_total, got: %s", body)
	}
	if !strings.Contains(body, `code="418"`) {
		t.Fatalf("expected recorded 418 status, got: %s", body)
	}
}

func TestNilMetricsIsPassthrough(t *testing.T) {
	var metrics *Metrics

	called := false
	handler := metrics.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if !called {
		t.Fatal("expected next handler to run")
	}

	rr := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 from nil metrics handler, got %d", rr.Code)
	}
}
