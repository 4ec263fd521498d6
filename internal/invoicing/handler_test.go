package invoicing

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type stubExporter struct {
	err error
}

func (s stubExporter) Export(ctx context.Context, inv Invoice) (string, []byte, error) {
	if s.err != nil {
		return "", nil, s.err
	}
	return "Invoice_" + inv.Number + ".pdf", []byte("%PDF-1.4"), nil
}

func exportRequest(t *testing.T, h *Handler, id string) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	r.Get("/{id}/export", h.Export)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/"+id+"/export", nil))
	return rr
}

func TestExportEmptyInvoiceIsBadRequest(t *testing.T) {
	repo := newMockRepo()
	repo.stored[1] = Invoice{ID: 1, Number: "INV-EMPTY01", Status: StatusDraft}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(logger, NewService(repo), stubExporter{err: ErrNoDocument}, nil)

	rr := exportRequest(t, h, "1")
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, rr.Body.String(), "line items")
}

func TestExportPipelineFailureIsInternal(t *testing.T) {
	repo := newMockRepo()
	repo.stored[1] = Invoice{ID: 1, Number: "INV-AB12CD34", Status: StatusIssued,
		Lines: []LineItem{{Description: "x", Quantity: 1, UnitPrice: 10}}}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(logger, NewService(repo), stubExporter{err: errors.New("rasterize document: boom")}, nil)

	rr := exportRequest(t, h, "1")
	require.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestExportStreamsPDFAttachment(t *testing.T) {
	repo := newMockRepo()
	repo.stored[1] = Invoice{ID: 1, Number: "INV-AB12CD34", Status: StatusIssued,
		Lines: []LineItem{{Description: "x", Quantity: 1, UnitPrice: 10}}}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(logger, NewService(repo), stubExporter{}, nil)

	rr := exportRequest(t, h, "1")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))
	require.Contains(t, rr.Header().Get("Content-Disposition"), `Invoice_INV-AB12CD34.pdf`)
	require.Equal(t, "%PDF-1.4", rr.Body.String())
}
