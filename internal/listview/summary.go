package listview

// Aggregate describes one derived summary metric over a loaded collection.
// A nil Value counts matching records; otherwise values are summed from raw
// numeric fields. Summaries are computed over the loaded list, not the
// filtered one, and only when the data source did not supply one.
type Aggregate[T any] struct {
	Name  string
	Value func(T) float64
	Where func(T) bool
}

// Summarize computes the fallback summary metrics for a collection.
func Summarize[T any](items []T, aggs []Aggregate[T]) map[string]float64 {
	out := make(map[string]float64, len(aggs))
	for _, agg := range aggs {
		var total float64
		for _, item := range items {
			if agg.Where != nil && !agg.Where(item) {
				continue
			}
			if agg.Value == nil {
				total++
			} else {
				total += agg.Value(item)
			}
		}
		out[agg.Name] = total
	}
	return out
}
