package customers

import "github.com/meridian-erp/meridian/internal/listview"

// MaxColumns caps the customizable column selection for the customer page.
const MaxColumns = 7

// Columns is the catalogue the column customizer offers for customers.
func Columns() []listview.Column {
	return []listview.Column{
		{Key: "code", Label: "Code"},
		{Key: "name", Label: "Name"},
		{Key: "email", Label: "Email"},
		{Key: "phone", Label: "Phone"},
		{Key: "address", Label: "Address"},
		{Key: "credit_limit", Label: "Credit Limit"},
		{Key: "is_active", Label: "Status"},
		{Key: "created_at", Label: "Created"},
	}
}

// DefaultColumns is the selection applied before a user customizes.
func DefaultColumns() []string {
	return []string{"code", "name", "email", "phone", "credit_limit"}
}
