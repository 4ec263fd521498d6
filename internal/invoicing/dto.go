package invoicing

// CreateInvoiceInput is the payload accepted when raising a new invoice.
type CreateInvoiceInput struct {
	CustomerID int64               `json:"customer_id" validate:"required,gt=0"`
	IssueDate  string              `json:"issue_date" validate:"required,datetime=2006-01-02"`
	DueDate    string              `json:"due_date" validate:"required,datetime=2006-01-02"`
	Currency   string              `json:"currency" validate:"required,len=3"`
	Notes      string              `json:"notes" validate:"omitempty,max=2000"`
	Lines      []CreateInvoiceLine `json:"lines" validate:"required,min=1,dive"`
}

// CreateInvoiceLine is one row of a new invoice.
type CreateInvoiceLine struct {
	Description string  `json:"description" validate:"required,max=500"`
	Quantity    float64 `json:"quantity" validate:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" validate:"gte=0"`
	VATRate     float64 `json:"vat_rate" validate:"gte=0,lte=100"`
}

// StatusInput moves an invoice along its lifecycle.
type StatusInput struct {
	Status InvoiceStatus `json:"status" validate:"required,oneof=draft issued paid void"`
}
