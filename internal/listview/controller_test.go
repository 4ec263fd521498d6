package listview

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type supplier struct {
	ID   int64
	Name string
	City any
}

func supplierConfig(perPage int) Config[supplier] {
	return Config[supplier]{
		PerPage: perPage,
		SearchText: func(s supplier) []string {
			return []string{s.Name, Text(s.City)}
		},
		Key: func(s supplier) string { return fmt.Sprint(s.ID) },
	}
}

func TestFilterMatchesSubstringCaseInsensitive(t *testing.T) {
	list := []supplier{
		{ID: 1, Name: "Ali Traders"},
		{ID: 2, Name: "XYZ Co"},
	}
	got := Filter(list, "ali", supplierConfig(10).SearchText)
	require.Len(t, got, 1)
	require.Equal(t, "Ali Traders", got[0].Name)
}

func TestFilterPreservesOrderAndMatchesAnyField(t *testing.T) {
	list := []supplier{
		{ID: 1, Name: "Acme", City: "Lahore"},
		{ID: 2, Name: "Lahore Metals", City: nil},
		{ID: 3, Name: "Beta", City: "Karachi"},
	}
	got := Filter(list, "lahore", supplierConfig(10).SearchText)
	require.Len(t, got, 2)
	require.Equal(t, int64(1), got[0].ID)
	require.Equal(t, int64(2), got[1].ID)
}

func TestFilterEmptyTermMatchesEverything(t *testing.T) {
	list := []supplier{{ID: 1}, {ID: 2}}
	require.Len(t, Filter(list, "", supplierConfig(10).SearchText), 2)
}

func TestFilterTreatsNilFieldsAsEmpty(t *testing.T) {
	list := []supplier{{ID: 1, Name: "Acme", City: nil}}
	require.NotPanics(t, func() {
		require.Empty(t, Filter(list, "zzz", supplierConfig(10).SearchText))
	})
}

func TestFilterNilListIsEmpty(t *testing.T) {
	require.Empty(t, Filter(nil, "x", supplierConfig(10).SearchText))
}

func TestFilterStringifiesNonStringFields(t *testing.T) {
	list := []supplier{{ID: 1, Name: "Acme", City: 42}}
	got := Filter(list, "42", supplierConfig(10).SearchText)
	require.Len(t, got, 1)
}

func TestSetSearchTermResetsPage(t *testing.T) {
	c := NewController(supplierConfig(2))
	c.SetItems(makeSuppliers(10))
	c.SetPage(4)
	require.Equal(t, 4, c.Page())

	c.SetSearchTerm("anything")
	require.Equal(t, 1, c.Page())
}

func TestTotalPagesBounds(t *testing.T) {
	require.Equal(t, 1, TotalPages(0, 8))
	require.Equal(t, 1, TotalPages(8, 8))
	require.Equal(t, 2, TotalPages(9, 8))
	require.Equal(t, 5, TotalPages(10, 2))
}

func TestPaginateWindow(t *testing.T) {
	list := makeSuppliers(10)

	page1 := Paginate(list, 1, 8)
	require.Len(t, page1, 8)
	require.Equal(t, int64(1), page1[0].ID)

	page2 := Paginate(list, 2, 8)
	require.Len(t, page2, 2)
	require.Equal(t, int64(9), page2[0].ID)

	require.Empty(t, Paginate(list, 3, 8))

	// N mod P == 0 still fills the last page completely.
	require.Len(t, Paginate(makeSuppliers(16), 2, 8), 8)
}

func TestSetPageRejectsOutOfRange(t *testing.T) {
	c := NewController(supplierConfig(8))
	c.SetItems(makeSuppliers(10))

	c.SetPage(0)
	require.Equal(t, 1, c.Page())
	c.SetPage(3)
	require.Equal(t, 1, c.Page())
	c.SetPage(2)
	require.Equal(t, 2, c.Page())

	require.True(t, c.HasPrev())
	require.False(t, c.HasNext())
}

func TestRemoveReclampsPage(t *testing.T) {
	c := NewController(supplierConfig(2))
	c.SetItems(makeSuppliers(5))
	c.SetPage(3)

	require.True(t, c.Remove("5"))
	require.Equal(t, 2, c.Page())
	require.Len(t, c.Rows(), 2)

	require.False(t, c.Remove("5"))
}

func TestShrinkingSetItemsReclamps(t *testing.T) {
	c := NewController(supplierConfig(2))
	c.SetItems(makeSuppliers(10))
	c.SetPage(5)

	c.SetItems(makeSuppliers(3))
	require.Equal(t, 2, c.Page())
}

func TestStaleFetchIsDiscarded(t *testing.T) {
	c := NewController(supplierConfig(8))

	first := c.BeginFetch()
	second := c.BeginFetch()
	require.True(t, c.Loading())

	require.True(t, c.CompleteFetch(second, makeSuppliers(3)))
	require.False(t, c.Loading())

	// The superseded response arrives late and must not overwrite state.
	require.False(t, c.CompleteFetch(first, makeSuppliers(9)))
	require.Equal(t, 3, c.FilteredCount())
}

func TestFailedFetchDegradesToEmpty(t *testing.T) {
	c := NewController(supplierConfig(8))
	c.SetItems(makeSuppliers(4))

	token := c.BeginFetch()
	require.True(t, c.Loading())
	require.True(t, c.FailFetch(token))
	require.False(t, c.Loading())
	require.Zero(t, c.FilteredCount())
	require.Empty(t, c.Rows())
}

func TestLoadingDistinctFromEmpty(t *testing.T) {
	c := NewController(supplierConfig(8))
	require.False(t, c.Loading())

	token := c.BeginFetch()
	require.True(t, c.Loading())
	require.Empty(t, c.Rows())

	c.CompleteFetch(token, nil)
	require.False(t, c.Loading())
	require.Empty(t, c.Rows())
}

func TestSupplierListScenario(t *testing.T) {
	// Ten suppliers, page size 8, empty search: page 1 shows 1-8 of 2 pages.
	c := NewController(supplierConfig(8))
	token := c.BeginFetch()
	c.CompleteFetch(token, makeSuppliers(10))

	require.Len(t, c.Rows(), 8)
	require.Equal(t, 2, c.TotalPages())

	// A term matching three suppliers resets to a single page of 3.
	c.SetPage(2)
	c.SetSearchTerm("match")
	items := makeSuppliers(10)
	items[1].Name = "match one"
	items[4].Name = "Match two"
	items[7].Name = "MATCHED three"
	c.SetItems(items)

	require.Equal(t, 1, c.Page())
	require.Equal(t, 1, c.TotalPages())
	require.Len(t, c.Rows(), 3)
}

func TestProjectSelectsCommittedColumnsOnly(t *testing.T) {
	rows := makeSuppliers(2)
	cols := []Column{{Key: "name", Label: "Name"}}
	projected := Project(rows, cols, func(s supplier, key string) any {
		switch key {
		case "name":
			return s.Name
		case "city":
			return s.City
		default:
			return nil
		}
	})
	require.Len(t, projected, 2)
	require.Equal(t, "Supplier 1", projected[0]["name"])
	require.NotContains(t, projected[0], "city")
}

func TestSummarizeCountsAndSums(t *testing.T) {
	type order struct {
		Status string
		Total  float64
	}
	orders := []order{
		{Status: "paid", Total: 100},
		{Status: "open", Total: 40},
		{Status: "paid", Total: 60},
	}
	summary := Summarize(orders, []Aggregate[order]{
		{Name: "count"},
		{Name: "total", Value: func(o order) float64 { return o.Total }},
		{Name: "paid", Where: func(o order) bool { return o.Status == "paid" }},
	})
	require.Equal(t, 3.0, summary["count"])
	require.Equal(t, 200.0, summary["total"])
	require.Equal(t, 2.0, summary["paid"])
}

func makeSuppliers(n int) []supplier {
	out := make([]supplier, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, supplier{ID: int64(i), Name: fmt.Sprintf("Supplier %d", i)})
	}
	return out
}
