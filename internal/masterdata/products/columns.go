package products

import "github.com/meridian-erp/meridian/internal/listview"

// MaxColumns caps the customizable column selection for the product page.
const MaxColumns = 7

// Columns is the catalogue the column customizer offers for products.
func Columns() []listview.Column {
	return []listview.Column{
		{Key: "sku", Label: "SKU"},
		{Key: "name", Label: "Name"},
		{Key: "category", Label: "Category"},
		{Key: "unit_price", Label: "Unit Price"},
		{Key: "vat_rate", Label: "VAT %"},
		{Key: "is_active", Label: "Status"},
		{Key: "created_at", Label: "Created"},
		{Key: "updated_at", Label: "Updated"},
	}
}

// DefaultColumns is the selection applied before a user customizes.
func DefaultColumns() []string {
	return []string{"sku", "name", "category", "unit_price", "vat_rate"}
}
