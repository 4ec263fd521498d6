package invoicing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/meridian-erp/meridian/internal/masterdata/shared"
	"github.com/meridian-erp/meridian/internal/platform/httpx"
	"github.com/meridian-erp/meridian/internal/rbac"
	internalShared "github.com/meridian-erp/meridian/internal/shared"
)

// Exporter turns a stored invoice into a downloadable PDF.
type Exporter interface {
	Export(ctx context.Context, inv Invoice) (filename string, pdf []byte, err error)
}

// ExportQueue hands an export off to the background worker.
type ExportQueue interface {
	EnqueueExport(ctx context.Context, invoiceID, requestedBy int64) error
}

type Handler struct {
	logger   *slog.Logger
	service  *Service
	exporter Exporter
	queue    ExportQueue
	validate *validator.Validate
}

func NewHandler(logger *slog.Logger, service *Service, exporter Exporter, queue ExportQueue) *Handler {
	return &Handler{logger: logger, service: service, exporter: exporter, queue: queue, validate: validator.New()}
}

func (h *Handler) MountRoutes(r chi.Router, guard rbac.Middleware) {
	r.Group(func(r chi.Router) {
		r.Use(guard.RequireAny(rbac.PermInvoiceView))
		r.Get("/", h.List)
		r.Get("/{id}", h.Show)
	})
	r.Group(func(r chi.Router) {
		r.Use(guard.RequireAll(rbac.PermInvoiceView, rbac.PermInvoiceExport))
		r.Get("/{id}/export", h.Export)
		r.Post("/{id}/export", h.ExportAsync)
	})
	r.Group(func(r chi.Router) {
		r.Use(guard.RequireAll(rbac.PermInvoiceEdit))
		r.Post("/", h.Create)
		r.Patch("/{id}/status", h.UpdateStatus)
		r.Delete("/{id}", h.Delete)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filters := shared.FiltersFromQuery(r, shared.DefaultLimit)

	var (
		invoices []Invoice
		total    int
		summary  Summary
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		invoices, total, err = h.service.List(ctx, filters)
		return err
	})
	g.Go(func() error {
		var err error
		summary, err = h.service.Summary(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		h.logger.Error("list invoices failed", "error", err)
		shared.RespondError(w, err)
		return
	}

	p := internalShared.NewPagination(filters.Page, filters.Limit, total)
	httpx.List(w, invoices, summary, httpx.ListMeta{
		Page:       p.Page,
		PerPage:    p.PerPage,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	})
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		shared.RespondError(w, err)
		return
	}
	inv, err := h.service.Get(r.Context(), id)
	if err != nil {
		shared.RespondError(w, err)
		return
	}
	httpx.OK(w, inv)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var input CreateInvoiceInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: invalid body", httpx.ErrValidation))
		return
	}
	if err := h.validate.Struct(input); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %s", httpx.ErrValidation, err.Error()))
		return
	}
	inv, err := h.service.Create(r.Context(), input)
	if err != nil {
		shared.RespondError(w, err)
		return
	}
	httpx.Created(w, inv)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		shared.RespondError(w, err)
		return
	}
	var input StatusInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: invalid body", httpx.ErrValidation))
		return
	}
	if err := h.validate.Struct(input); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %s", httpx.ErrValidation, err.Error()))
		return
	}
	inv, err := h.service.UpdateStatus(r.Context(), id, input.Status)
	if err != nil {
		shared.RespondError(w, err)
		return
	}
	httpx.OK(w, inv)
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

// Export streams the invoice as a PDF attachment.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		shared.RespondError(w, err)
		return
	}
	inv, err := h.service.Get(r.Context(), id)
	if err != nil {
		shared.RespondError(w, err)
		return
	}
	filename, pdf, err := h.exporter.Export(r.Context(), inv)
	if err != nil {
		if errors.Is(err, ErrNoDocument) {
			httpx.RespondError(w, fmt.Errorf("%w: invoice has no line items to export", httpx.ErrValidation))
			return
		}
		h.logger.Error("invoice export failed", "invoice", inv.Number, "error", err)
		shared.RespondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// ExportAsync queues the PDF render on the worker and returns immediately.
// The requester gets a notification when the file lands.
func (h *Handler) ExportAsync(w http.ResponseWriter, r *http.Request) {
	if h.queue == nil {
		httpx.RespondError(w, httpx.ErrNotFound)
		return
	}
	id, err := pathID(r)
	if err != nil {
		shared.RespondError(w, err)
		return
	}
	inv, err := h.service.Get(r.Context(), id)
	if err != nil {
		shared.RespondError(w, err)
		return
	}
	var requestedBy int64
	if sess := internalShared.SessionFromContext(r.Context()); sess != nil {
		requestedBy = sess.UserID
	}
	if err := h.queue.EnqueueExport(r.Context(), inv.ID, requestedBy); err != nil {
		h.logger.Error("enqueue export failed", "invoice", inv.Number, "error", err)
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, shared.ErrInvalidID
	}
	return id, nil
}
