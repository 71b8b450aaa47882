package query

import "sort"

// SortStable orders a copy of items by less. Equal keys keep their input
// order, so repeated calls over the same collection are byte-identical.
func SortStable[T any](items []T, less func(a, b T) bool) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
