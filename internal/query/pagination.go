package query

// Paginate returns items[skip:skip+limit] clamped to the slice bounds, and
// the length of items before slicing. limit 0 returns everything from skip.
func Paginate[T any](items []T, limit, skip int) ([]T, int) {
	total := len(items)

	start := max(skip, 0)
	if start > total {
		start = total
	}

	end := total
	if limit > 0 && limit < total-start {
		end = start + limit
	}

	return items[start:end:end], total
}
