package products

import "time"

// Product represents a sellable item.
type Product struct {
	ID        int64     `json:"id"`
	SKU       string    `json:"sku"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	UnitPrice float64   `json:"unit_price"`
	VATRate   float64   `json:"vat_rate"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Summary carries the aggregate counters for the product table.
type Summary struct {
	Total      int     `json:"total"`
	Active     int     `json:"active"`
	AvgPrice   float64 `json:"avg_price"`
	Categories int     `json:"categories"`
}
