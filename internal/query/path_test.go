package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	ID   int `json:"id"`
	Age  int `json:"age"`
	Hair struct {
		Color string `json:"color"`
	} `json:"hair"`
}

func TestPathMatcher_Match(t *testing.T) {
	t.Parallel()

	p := person{ID: 1, Age: 30}
	p.Hair.Color = "Brown"

	tests := []struct {
		key, value string
		want       bool
	}{
		{key: "hair.color", value: "brown", want: true},
		{key: "age", value: "30", want: true},
		{key: "hair.color", value: "black", want: false},
		{key: "nothing.here", value: "x", want: false},
	}

	for _, tt := range tests {
		m, err := NewPathMatcher(tt.key, tt.value)
		require.NoError(t, err)
		ok, err := m.Match(p)
		require.NoError(t, err)
		assert.Equal(t, tt.want, ok, "%s=%s", tt.key, tt.value)
	}
}

func TestNewPathMatcher_EmptyKey(t *testing.T) {
	t.Parallel()

	_, err := NewPathMatcher("  ", "x")
	assert.Error(t, err)
}
