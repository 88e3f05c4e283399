package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func widgetText(w widget) []string { return []string{w.Name} }

func TestSearch(t *testing.T) {
	t.Parallel()

	items := []widget{
		{ID: 1, Name: "Straße Lamp"},
		{ID: 2, Name: "iPhone 9"},
		{ID: 3, Name: "IPHONE X"},
	}

	got := Search(items, "iphone", widgetText)
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].ID)
	assert.Equal(t, 3, got[1].ID)

	assert.Len(t, Search(items, "STRASSE", widgetText), 1)
	assert.Len(t, Search(items, "  ", widgetText), 3)
	assert.Empty(t, Search(items, "tablet", widgetText))
}

func TestSearch_ResultsContainQuery(t *testing.T) {
	t.Parallel()

	items := []widget{{ID: 1, Name: "Red Bolt"}, {ID: 2, Name: "blue nut"}, {ID: 3, Name: "bolt cutter"}}
	for _, w := range Search(items, "BOLT", widgetText) {
		assert.Contains(t, []int{1, 3}, w.ID)
	}
}

func TestSort(t *testing.T) {
	t.Parallel()

	items := []widget{{ID: 1, Price: 3}, {ID: 2, Price: 1}, {ID: 3, Price: 3}, {ID: 4, Price: 2}}

	asc := Sort(widgetSchema, items, "price", OrderAsc)
	assert.Equal(t, []int{2, 4, 1, 3}, ids(asc))

	desc := Sort(widgetSchema, items, "price", OrderDesc)
	assert.Equal(t, []int{1, 3, 4, 2}, ids(desc))

	assert.Equal(t, []int{1, 2, 3, 4}, ids(items), "input left in place")
	assert.Equal(t, []int{1, 2, 3, 4}, ids(Sort(widgetSchema, items, "bogus", OrderDesc)))
}

func TestCompareValues(t *testing.T) {
	t.Parallel()

	assert.Equal(t, -1, CompareValues("a", "b"))
	assert.Equal(t, 1, CompareValues(5, 2))
	assert.Equal(t, 0, CompareValues(1.5, 1.5))
	assert.Equal(t, -1, CompareValues(false, true))
}

func ids(items []widget) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}
