package invoicing

import (
	"errors"
	"time"

	"github.com/meridian-erp/meridian/internal/listview"
)

// ErrNoDocument marks an invoice that cannot be rendered as a printable
// document, typically because it carries no line items. Callers treat it
// as a rejected request, not a pipeline failure.
var ErrNoDocument = errors.New("invoicing: no document to export")

type InvoiceStatus string

const (
	StatusDraft  InvoiceStatus = "draft"
	StatusIssued InvoiceStatus = "issued"
	StatusPaid   InvoiceStatus = "paid"
	StatusVoid   InvoiceStatus = "void"
)

// LineItem is one billable row on an invoice. Quantity and rates are kept
// as raw numerics; formatted strings never enter the totals math.
type LineItem struct {
	ID          int64   `json:"id"`
	InvoiceID   int64   `json:"invoice_id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	VATRate     float64 `json:"vat_rate"`
	LineNet     float64 `json:"line_net"`
	LineVAT     float64 `json:"line_vat"`
}

type Invoice struct {
	ID           int64         `json:"id"`
	Number       string        `json:"number"`
	CustomerID   int64         `json:"customer_id"`
	CustomerName string        `json:"customer_name"`
	IssueDate    time.Time     `json:"issue_date"`
	DueDate      time.Time     `json:"due_date"`
	Status       InvoiceStatus `json:"status"`
	Currency     string        `json:"currency"`
	Notes        string        `json:"notes"`
	BankName     string        `json:"bank_name"`
	BankIBAN     string        `json:"bank_iban"`
	BankBIC      string        `json:"bank_bic"`
	NetTotal     float64       `json:"net_total"`
	VATTotal     float64       `json:"vat_total"`
	GrandTotal   float64       `json:"grand_total"`
	Lines        []LineItem    `json:"lines,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// Summary carries the aggregate counters shown above the invoice table.
type Summary struct {
	Total       int     `json:"total"`
	Draft       int     `json:"draft"`
	Issued      int     `json:"issued"`
	Paid        int     `json:"paid"`
	Outstanding float64 `json:"outstanding"`
}

// MaxColumns caps the customizable column selection for the invoice page.
const MaxColumns = 7

// Columns is the catalogue the column customizer offers for invoices.
func Columns() []listview.Column {
	return []listview.Column{
		{Key: "number", Label: "Invoice #"},
		{Key: "customer_name", Label: "Customer"},
		{Key: "issue_date", Label: "Issued"},
		{Key: "due_date", Label: "Due"},
		{Key: "status", Label: "Status"},
		{Key: "net_total", Label: "Net"},
		{Key: "vat_total", Label: "VAT"},
		{Key: "grand_total", Label: "Total"},
		{Key: "currency", Label: "Currency"},
	}
}

// DefaultColumns is the selection applied before a user customizes.
func DefaultColumns() []string {
	return []string{"number", "customer_name", "issue_date", "due_date", "status", "grand_total"}
}
