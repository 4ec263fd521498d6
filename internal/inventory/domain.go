package inventory

import (
	"time"

	"github.com/meridian-erp/meridian/internal/listview"
)

// StockLevel is the quantity of one product in one warehouse.
type StockLevel struct {
	ID            int64     `json:"id"`
	ProductID     int64     `json:"product_id"`
	ProductSKU    string    `json:"product_sku"`
	ProductName   string    `json:"product_name"`
	WarehouseID   int64     `json:"warehouse_id"`
	WarehouseName string    `json:"warehouse_name"`
	Quantity      float64   `json:"quantity"`
	ReorderPoint  float64   `json:"reorder_point"`
	UnitPrice     float64   `json:"unit_price"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Summary carries the aggregate counters shown above the stock table.
type Summary struct {
	Items      int     `json:"items"`
	TotalQty   float64 `json:"total_qty"`
	TotalValue float64 `json:"total_value"`
	LowStock   int     `json:"low_stock"`
}

// Adjustment records a manual stock correction.
type Adjustment struct {
	ProductID   int64   `json:"product_id" validate:"required,gt=0"`
	WarehouseID int64   `json:"warehouse_id" validate:"required,gt=0"`
	Delta       float64 `json:"delta" validate:"required"`
	Reason      string  `json:"reason" validate:"required"`
}

// MaxColumns caps the customizable column selection for the stock page.
const MaxColumns = 6

// Columns is the catalogue the column customizer offers for stock levels.
func Columns() []listview.Column {
	return []listview.Column{
		{Key: "product_sku", Label: "SKU"},
		{Key: "product_name", Label: "Product"},
		{Key: "warehouse_name", Label: "Warehouse"},
		{Key: "quantity", Label: "Qty"},
		{Key: "reorder_point", Label: "Reorder At"},
		{Key: "unit_price", Label: "Unit Price"},
		{Key: "updated_at", Label: "Updated"},
	}
}

// DefaultColumns is the selection applied before a user customizes.
func DefaultColumns() []string {
	return []string{"product_sku", "product_name", "warehouse_name", "quantity", "reorder_point"}
}
