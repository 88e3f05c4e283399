package query

import (
	"cmp"
	"fmt"
	"slices"
)

const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Sort returns a sorted copy of items ordered by the sortBy field. Unknown or
// empty sortBy returns items as they are. The sort is stable.
func Sort[T any](s *Schema, items []T, sortBy, order string) []T {
	if sortBy == "" || !s.Has(sortBy) {
		return items
	}
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		va, _ := s.Value(a, sortBy)
		vb, _ := s.Value(b, sortBy)
		c := CompareValues(va, vb)
		if order == OrderDesc {
			return -c
		}
		return c
	})
	return out
}

// CompareValues orders two scalar values of the same kind and falls back to
// comparing their string forms.
func CompareValues(a, b any) int {
	switch va := a.(type) {
	case string:
		if vb, ok := b.(string); ok {
			return cmp.Compare(va, vb)
		}
	case int:
		if vb, ok := b.(int); ok {
			return cmp.Compare(va, vb)
		}
	case float64:
		if vb, ok := b.(float64); ok {
			return cmp.Compare(va, vb)
		}
	case bool:
		if vb, ok := b.(bool); ok {
			switch {
			case va == vb:
				return 0
			case !va:
				return -1
			default:
				return 1
			}
		}
	}
	return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
}
