package shared

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOffsetClampsPageIntoRange(t *testing.T) {
	cases := []struct {
		name   string
		page   int
		limit  int
		total  int
		offset int
	}{
		{name: "first page", page: 1, limit: 10, total: 30, offset: 0},
		{name: "middle page", page: 2, limit: 10, total: 30, offset: 10},
		{name: "last page", page: 3, limit: 10, total: 30, offset: 20},
		{name: "past the end lands on last page", page: 99, limit: 10, total: 30, offset: 20},
		{name: "partial last page", page: 5, limit: 10, total: 25, offset: 20},
		{name: "zero page treated as first", page: 0, limit: 10, total: 30, offset: 0},
		{name: "negative page treated as first", page: -3, limit: 10, total: 30, offset: 0},
		{name: "empty result set", page: 7, limit: 10, total: 0, offset: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := ListFilters{Page: tc.page, Limit: tc.limit}
			require.Equal(t, tc.offset, f.Offset(tc.total))
		})
	}
}
