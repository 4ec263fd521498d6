package shared

import (
	internalshared "github.com/meridian-erp/meridian/internal/shared"
)

// ListFilters represents standard list page filters
type ListFilters struct {
	Page    int
	Limit   int
	Search  string
	SortBy  string
	SortDir string

	// Entity specific filters
	WarehouseID *int64
}

// Offset returns the zero-based row offset for the requested page, with the
// page clamped into [1, ceil(total/limit)]. A request past the end therefore
// lands on the last page, matching the clamped page reported in the response
// metadata.
func (f ListFilters) Offset(total int) int {
	return internalshared.NewPagination(f.Page, f.Limit, total).Offset()
}
