package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNormalize_InvalidValuesFallBackToDefaults tests that bad window
// values are replaced, never rejected
func TestNormalize_InvalidValuesFallBackToDefaults(t *testing.T) {
	cases := []struct {
		name      string
		in        Params
		wantPage  int
		wantLimit int
	}{
		{"zero values", Params{}, 1, 10},
		{"negative page", Params{Page: -2, Limit: 5}, 1, 5},
		{"zero limit", Params{Page: 3, Limit: 0}, 3, 10},
		{"limit above cap", Params{Page: 1, Limit: 5000}, 1, 10},
		{"valid window untouched", Params{Page: 4, Limit: 25}, 4, 25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalize()
			assert.Equal(t, tc.wantPage, got.Page)
			assert.Equal(t, tc.wantLimit, got.Limit)
		})
	}
}

// TestOffset tests the page-to-offset conversion
func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Params{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 10, Params{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 30, Params{Page: 4, Limit: 10}.Offset())
	// Invalid windows normalize before converting
	assert.Equal(t, 0, Params{Page: -1, Limit: 0}.Offset())
}

// TestDescending_OnlyExactLiteralMatches tests the two-way direction
// mapping: the literal "descending" reverses, everything else is ascending
func TestDescending_OnlyExactLiteralMatches(t *testing.T) {
	assert.True(t, Params{SortDirection: "descending"}.Descending())

	assert.False(t, Params{SortDirection: "desc"}.Descending())
	assert.False(t, Params{SortDirection: "DESC"}.Descending())
	assert.False(t, Params{SortDirection: "Descending"}.Descending())
	assert.False(t, Params{SortDirection: "ascending"}.Descending())
	assert.False(t, Params{SortDirection: ""}.Descending())
}

// TestNewPage_DerivesTotals tests total page derivation
func TestNewPage_DerivesTotals(t *testing.T) {
	items := make([]int, 10)

	page := NewPage(items, Params{Page: 1, Limit: 10}, 25)
	assert.Equal(t, 25, page.TotalItems)
	assert.Equal(t, 3, page.TotalPages)

	empty := NewPage([]int{}, Params{Page: 1, Limit: 10}, 0)
	assert.Equal(t, 0, empty.TotalPages)
	assert.NotNil(t, empty.Items)

	exact := NewPage(items, Params{Page: 1, Limit: 10}, 20)
	assert.Equal(t, 2, exact.TotalPages)
}

// TestWindow_Boundaries tests in-memory windowing at the edges
func TestWindow_Boundaries(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	first := Window(items, Params{Page: 1, Limit: 10})
	assert.Len(t, first, 10)
	assert.Equal(t, 0, first[0])

	last := Window(items, Params{Page: 3, Limit: 10})
	assert.Len(t, last, 5)
	assert.Equal(t, 20, last[0])

	past := Window(items, Params{Page: 4, Limit: 10})
	assert.Empty(t, past)
}
