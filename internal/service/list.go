package service

import (
	"github.com/Skotchmaster/dummyjson/internal/query"
)

// Page is one page of a list read after projection.
type Page struct {
	Items []any
	Total int
	Skip  int
	Limit int
}

type cloner[T any] interface {
	Clone() T
}

// listPage runs the read pipeline: sort, paginate, copy, project.
// items may alias catalog storage and is never written to.
func listPage[T cloner[T]](s *query.Schema, items []T, opts query.Options) Page {
	items = query.Sort(s, items, opts.SortBy, opts.Order)
	page, total := query.Paginate(items, opts.Limit, opts.Skip)

	copied := make([]T, len(page))
	for i, it := range page {
		copied[i] = it.Clone()
	}

	return Page{
		Items: query.Project(s, copied, opts.Select),
		Total: total,
		Skip:  opts.Skip,
		Limit: opts.Limit,
	}
}
