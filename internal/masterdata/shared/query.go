package shared

import (
	"net/http"
	"strconv"
)

// FiltersFromQuery parses the standard ?search=&page=&limit=&sort=&dir=
// parameters shared by every list endpoint.
func FiltersFromQuery(r *http.Request, defaultLimit int) ListFilters {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = DefaultPage
	}
	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit < 1 {
		limit = defaultLimit
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return ListFilters{
		Page:    page,
		Limit:   limit,
		Search:  q.Get("search"),
		SortBy:  q.Get("sort"),
		SortDir: q.Get("dir"),
	}
}
