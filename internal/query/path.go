package query

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ohler55/ojg/jp"
)

// PathMatcher matches records whose value at a dotted key path, such as
// "hair.color", equals value ignoring case.
type PathMatcher struct {
	expr  jp.Expr
	value string
}

func NewPathMatcher(key, value string) (*PathMatcher, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, fmt.Errorf("empty key")
	}
	expr, err := jp.ParseString("$." + key)
	if err != nil {
		return nil, fmt.Errorf("parse key %q: %w", key, err)
	}
	return &PathMatcher{expr: expr, value: value}, nil
}

func (m *PathMatcher) Match(rec any) (bool, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return false, err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return false, err
	}
	for _, v := range m.expr.Get(doc) {
		if strings.EqualFold(fmt.Sprint(v), m.value) {
			return true, nil
		}
	}
	return false, nil
}
