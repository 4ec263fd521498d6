package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskInvoiceExport renders an invoice PDF off the request path.
	TaskInvoiceExport = "invoice:export"
	// TaskNotificationScan refreshes the unread badge counters.
	TaskNotificationScan = "notifications:scan"
)

// InvoiceExportPayload identifies the invoice to export and who asked.
type InvoiceExportPayload struct {
	InvoiceID   int64 `json:"invoice_id"`
	RequestedBy int64 `json:"requested_by"`
}

// NewInvoiceExportTask constructs an Asynq task for a PDF export.
func NewInvoiceExportTask(payload InvoiceExportPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskInvoiceExport, data), nil
}

// NewNotificationScanTask constructs the periodic badge-refresh task.
func NewNotificationScanTask() *asynq.Task {
	return asynq.NewTask(TaskNotificationScan, nil)
}
