package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hibiken/asynq"

	"github.com/meridian-erp/meridian/internal/invoicing"
	jobmetrics "github.com/meridian-erp/meridian/internal/jobs"
	"github.com/meridian-erp/meridian/internal/notifications"
)

// InvoiceExportJob renders invoice PDFs in the background and drops the
// result into the export directory. The requester gets a notification
// either way.
type InvoiceExportJob struct {
	logger    *slog.Logger
	invoices  *invoicing.Service
	exporter  invoicing.Exporter
	notifier  *notifications.Service
	metrics   *jobmetrics.Metrics
	outputDir string
}

func NewInvoiceExportJob(logger *slog.Logger, invoices *invoicing.Service, exporter invoicing.Exporter, notifier *notifications.Service, metrics *jobmetrics.Metrics, outputDir string) *InvoiceExportJob {
	return &InvoiceExportJob{
		logger:    logger,
		invoices:  invoices,
		exporter:  exporter,
		notifier:  notifier,
		metrics:   metrics,
		outputDir: outputDir,
	}
}

func (j *InvoiceExportJob) Handle(ctx context.Context, t *asynq.Task) error {
	tracker := j.metrics.Track("invoice_export")

	var payload InvoiceExportPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		_ = tracker.End(err)
		return asynq.SkipRetry
	}

	inv, err := j.invoices.Get(ctx, payload.InvoiceID)
	if err != nil {
		j.metrics.AddExport("failure")
		return tracker.End(fmt.Errorf("load invoice %d: %w", payload.InvoiceID, err))
	}

	filename, pdf, err := j.exporter.Export(ctx, inv)
	if err != nil {
		j.metrics.AddExport("failure")
		j.notifyRequester(ctx, payload.RequestedBy, "export_failed",
			fmt.Sprintf("Export of %s failed", inv.Number), err.Error())
		return tracker.End(err)
	}

	path := filepath.Join(j.outputDir, filename)
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		j.metrics.AddExport("failure")
		return tracker.End(fmt.Errorf("write %s: %w", path, err))
	}

	j.metrics.AddExport("success")
	j.logger.Info("invoice export complete", "invoice", inv.Number, "path", path)
	j.notifyRequester(ctx, payload.RequestedBy, "export_ready",
		fmt.Sprintf("%s is ready", filename), "The PDF is available in the export folder.")
	return tracker.End(nil)
}

func (j *InvoiceExportJob) notifyRequester(ctx context.Context, userID int64, kind, title, body string) {
	if userID <= 0 {
		return
	}
	if _, err := j.notifier.Notify(ctx, userID, kind, title, body); err != nil {
		j.logger.Warn("export notification failed", "user", userID, "error", err)
	}
}
