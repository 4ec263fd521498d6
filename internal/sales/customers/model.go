package customers

import "time"

// Customer represents a buyer account.
type Customer struct {
	ID          int64     `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	CreditLimit float64   `json:"credit_limit"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Summary carries the aggregate counters for the customer table.
type Summary struct {
	Total       int     `json:"total"`
	Active      int     `json:"active"`
	TotalCredit float64 `json:"total_credit"`
}
