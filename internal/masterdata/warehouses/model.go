package warehouses

import "time"

// Warehouse represents a storage location.
type Warehouse struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Capacity  int       `json:"capacity"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Summary carries the aggregate counters for the warehouse table.
type Summary struct {
	Total         int `json:"total"`
	Active        int `json:"active"`
	TotalCapacity int `json:"total_capacity"`
}
