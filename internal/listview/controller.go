// Package listview implements the generic list-page controller shared by the
// admin console resource screens: case-insensitive search, in-memory
// pagination, capped column selection and derived summary metrics. Each page
// owns an independent controller instance; all state is synchronous and
// in-memory.
package listview

import (
	"fmt"
	"math"
	"strings"
)

// Column identifies one displayable field of a record.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Config parametrizes a Controller for one resource type.
type Config[T any] struct {
	// PerPage is the fixed page size for this page type.
	PerPage int
	// SearchText returns the searchable field values of a record.
	SearchText func(T) []string
	// Key returns the stable unique identifier used for row identity
	// and destructive-operation reconciliation.
	Key func(T) string
}

// Controller owns the fetched collection, the search term, the pagination
// window and the loading flag for one list page.
type Controller[T any] struct {
	cfg     Config[T]
	items   []T
	term    string
	page    int
	loading bool

	// Monotonic fetch sequencing: responses carrying a stale token are
	// discarded so an out-of-order reply never overwrites newer state.
	issued  uint64
	applied uint64
}

// NewController constructs a controller with an empty collection on page 1.
func NewController[T any](cfg Config[T]) *Controller[T] {
	if cfg.PerPage <= 0 {
		cfg.PerPage = 10
	}
	return &Controller[T]{cfg: cfg, page: 1}
}

// SetItems replaces the raw collection. A nil list is treated as empty.
// The page is reclamped because the filtered set may have shrunk.
func (c *Controller[T]) SetItems(items []T) {
	c.items = items
	c.Reclamp()
}

// Items returns the full loaded (unfiltered) collection.
func (c *Controller[T]) Items() []T {
	return c.items
}

// SetSearchTerm stores the term and resets the current page to 1.
func (c *Controller[T]) SetSearchTerm(term string) {
	c.term = term
	c.page = 1
}

// SearchTerm returns the active search term.
func (c *Controller[T]) SearchTerm() string {
	return c.term
}

// SetPage moves to page n. Values outside [1, TotalPages] are ignored.
func (c *Controller[T]) SetPage(n int) {
	if n < 1 || n > c.TotalPages() {
		return
	}
	c.page = n
}

// Page returns the current page number.
func (c *Controller[T]) Page() int {
	return c.page
}

// HasPrev reports whether a previous page exists.
func (c *Controller[T]) HasPrev() bool {
	return c.page > 1
}

// HasNext reports whether a next page exists.
func (c *Controller[T]) HasNext() bool {
	return c.page < c.TotalPages()
}

// TotalPages returns max(1, ceil(filtered/perPage)).
func (c *Controller[T]) TotalPages() int {
	return TotalPages(c.FilteredCount(), c.cfg.PerPage)
}

// FilteredCount returns the size of the filtered set.
func (c *Controller[T]) FilteredCount() int {
	return len(c.filtered())
}

// Rows returns the current page of the filtered collection.
func (c *Controller[T]) Rows() []T {
	return Paginate(c.filtered(), c.page, c.cfg.PerPage)
}

// Reclamp pulls an out-of-range page back into [1, TotalPages]. Invoked
// after every mutation that can shrink the collection.
func (c *Controller[T]) Reclamp() {
	if total := c.TotalPages(); c.page > total {
		c.page = total
	}
	if c.page < 1 {
		c.page = 1
	}
}

// Remove drops the record with the given identity key and reclamps.
// It reports whether a record was removed.
func (c *Controller[T]) Remove(key string) bool {
	if c.cfg.Key == nil {
		return false
	}
	for i, item := range c.items {
		if c.cfg.Key(item) == key {
			c.items = append(c.items[:i:i], c.items[i+1:]...)
			c.Reclamp()
			return true
		}
	}
	return false
}

// Loading reports whether a fetch is in flight. Renderers use this to show
// a loader row instead of the empty state; the two must never be conflated.
func (c *Controller[T]) Loading() bool {
	return c.loading
}

// BeginFetch marks the start of a fetch and returns its token. Only the
// most recently issued token is accepted by CompleteFetch/FailFetch.
func (c *Controller[T]) BeginFetch() uint64 {
	c.issued++
	c.loading = true
	return c.issued
}

// CompleteFetch applies a fetch response. Responses whose token is not the
// latest issued are discarded and the method reports false.
func (c *Controller[T]) CompleteFetch(token uint64, items []T) bool {
	if token != c.issued || token <= c.applied {
		return false
	}
	c.applied = token
	c.loading = false
	c.SetItems(items)
	return true
}

// FailFetch records a fetch failure: the collection degrades to empty
// rather than erroring. Stale failures are discarded like stale successes.
func (c *Controller[T]) FailFetch(token uint64) bool {
	return c.CompleteFetch(token, nil)
}

func (c *Controller[T]) filtered() []T {
	return Filter(c.items, c.term, c.cfg.SearchText)
}

// Filter returns the subsequence of list whose searchable fields contain
// term as a case-insensitive substring, preserving original order. It is
// pure: identical inputs always produce identical output. An empty term
// matches everything; a nil list is treated as empty.
func Filter[T any](list []T, term string, searchText func(T) []string) []T {
	if term == "" || searchText == nil {
		return list
	}
	needle := strings.ToLower(term)
	var out []T
	for _, item := range list {
		for _, field := range searchText(item) {
			if strings.Contains(strings.ToLower(field), needle) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// Paginate returns the slice [(page-1)*perPage, page*perPage) of list.
func Paginate[T any](list []T, page, perPage int) []T {
	if perPage <= 0 || page < 1 {
		return nil
	}
	start := (page - 1) * perPage
	if start >= len(list) {
		return nil
	}
	end := start + perPage
	if end > len(list) {
		end = len(list)
	}
	return list[start:end]
}

// TotalPages returns max(1, ceil(total/perPage)).
func TotalPages(total, perPage int) int {
	if perPage <= 0 {
		return 1
	}
	pages := int(math.Ceil(float64(total) / float64(perPage)))
	if pages < 1 {
		return 1
	}
	return pages
}

// Text renders an arbitrary field value for search matching. Nil values
// become the empty string instead of panicking.
func Text(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// Project maps each row to the subset of attributes named by the committed
// columns, in column order. The renderer draws exactly these cells.
func Project[T any](rows []T, cols []Column, get func(T, string) any) []map[string]any {
	out := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		cells := make(map[string]any, len(cols))
		for _, col := range cols {
			cells[col.Key] = get(row, col.Key)
		}
		out = append(out, cells)
	}
	return out
}
