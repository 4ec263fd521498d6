package orders

import "time"

// OrderStatus enumerates the sales order lifecycle.
type OrderStatus string

const (
	StatusDraft     OrderStatus = "draft"
	StatusConfirmed OrderStatus = "confirmed"
	StatusShipped   OrderStatus = "shipped"
	StatusCancelled OrderStatus = "cancelled"
)

// Order represents a sales order header with its lines.
type Order struct {
	ID           int64       `json:"id"`
	Number       string      `json:"number"`
	CustomerID   int64       `json:"customer_id"`
	CustomerName string      `json:"customer_name"`
	Status       OrderStatus `json:"status"`
	OrderDate    time.Time   `json:"order_date"`
	Lines        []OrderLine `json:"lines,omitempty"`
	NetTotal     float64     `json:"net_total"`
	TaxTotal     float64     `json:"tax_total"`
	GrandTotal   float64     `json:"grand_total"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// OrderLine is one product line on an order.
type OrderLine struct {
	ID              int64   `json:"id"`
	OrderID         int64   `json:"order_id"`
	ProductID       int64   `json:"product_id"`
	Description     string  `json:"description"`
	Quantity        float64 `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	DiscountPercent float64 `json:"discount_percent"`
	TaxPercent      float64 `json:"tax_percent"`
	LineTotal       float64 `json:"line_total"`
}

// Summary carries the aggregate counters shown above the order table.
type Summary struct {
	Total      int     `json:"total"`
	Draft      int     `json:"draft"`
	Confirmed  int     `json:"confirmed"`
	Shipped    int     `json:"shipped"`
	Cancelled  int     `json:"cancelled"`
	GrandTotal float64 `json:"grand_total"`
}
