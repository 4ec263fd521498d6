package warehouses

import "github.com/meridian-erp/meridian/internal/listview"

// MaxColumns caps the customizable column selection for the warehouse page.
const MaxColumns = 6

// Columns is the catalogue the column customizer offers for warehouses.
func Columns() []listview.Column {
	return []listview.Column{
		{Key: "code", Label: "Code"},
		{Key: "name", Label: "Name"},
		{Key: "location", Label: "Location"},
		{Key: "capacity", Label: "Capacity"},
		{Key: "is_active", Label: "Status"},
		{Key: "created_at", Label: "Created"},
	}
}

// DefaultColumns is the selection applied before a user customizes.
func DefaultColumns() []string {
	return []string{"code", "name", "location", "capacity"}
}
