package query

import (
	"strings"

	"golang.org/x/text/cases"
)

// Filter keeps the items for which keep returns true, in order.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// Search keeps items where q is a case-insensitive substring of any of the
// strings returned by fields. An empty q keeps everything.
func Search[T any](items []T, q string, fields func(T) []string) []T {
	q = strings.TrimSpace(q)
	if q == "" {
		return items
	}
	// Caser is stateful, one per call.
	fold := cases.Fold()
	needle := fold.String(q)
	return Filter(items, func(it T) bool {
		for _, f := range fields(it) {
			if strings.Contains(fold.String(f), needle) {
				return true
			}
		}
		return false
	})
}
