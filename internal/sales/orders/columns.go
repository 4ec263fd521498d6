package orders

import "github.com/meridian-erp/meridian/internal/listview"

// MaxColumns caps the customizable column selection for the order page.
const MaxColumns = 7

// Columns is the catalogue the column customizer offers for sales orders.
func Columns() []listview.Column {
	return []listview.Column{
		{Key: "number", Label: "Order #"},
		{Key: "customer_name", Label: "Customer"},
		{Key: "status", Label: "Status"},
		{Key: "order_date", Label: "Date"},
		{Key: "net_total", Label: "Net"},
		{Key: "tax_total", Label: "Tax"},
		{Key: "grand_total", Label: "Total"},
		{Key: "created_at", Label: "Created"},
	}
}

// DefaultColumns is the selection applied before a user customizes.
func DefaultColumns() []string {
	return []string{"number", "customer_name", "status", "order_date", "grand_total"}
}
