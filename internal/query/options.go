package query

import (
	"net/url"
	"strconv"
	"strings"
)

const DefaultLimit = 30

// Options is the normalized form of the list query parameters.
// Limit 0 means no upper bound.
type Options struct {
	Limit  int
	Skip   int
	Select []string
	Q      string
	SortBy string
	Order  string
}

func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return v
	}
	return def
}

// ParseOptions never fails: bad numbers fall back to defaults and negative
// numbers clamp to zero.
func ParseOptions(v url.Values) Options {
	opts := Options{
		Limit:  max(ParseIntDefault(v.Get("limit"), DefaultLimit), 0),
		Skip:   max(ParseIntDefault(v.Get("skip"), 0), 0),
		Select: SplitSelect(v.Get("select")),
		Q:      strings.TrimSpace(v.Get("q")),
		SortBy: strings.TrimSpace(v.Get("sortBy")),
		Order:  OrderAsc,
	}
	if strings.EqualFold(strings.TrimSpace(v.Get("order")), OrderDesc) {
		opts.Order = OrderDesc
	}
	return opts
}

// SplitSelect turns "title, price,,title" into [title price].
func SplitSelect(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
