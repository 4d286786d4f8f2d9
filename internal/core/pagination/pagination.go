// Package pagination provides the offset window model shared by every list
// operation: one-based pages, a bounded limit, and a sort direction that is
// descending only for the literal value "descending".
package pagination

// Window defaults. Out-of-range client values fall back to these rather
// than erroring.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// SortDescending is the only sort direction value that reverses a sort.
// Anything else, including "desc" and "DESC", sorts ascending.
const SortDescending = "descending"

// Params carries the client-supplied window and sort for a list operation.
type Params struct {
	SortBy        string `json:"sortBy"`
	SortDirection string `json:"sortType"`
	Page          int    `json:"page"`
	Limit         int    `json:"limit"`
}

// Normalize replaces invalid window values with the defaults. Page and
// limit must be positive; limits above MaxLimit clamp to the default too,
// keeping one predictable fallback for every bad input.
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 || p.Limit > MaxLimit {
		p.Limit = DefaultLimit
	}
	return p
}

// Offset converts the one-based page to a row offset.
func (p Params) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.Limit
}

// Descending reports whether the sort direction reverses the sort. The
// match is exact: only the literal "descending" counts.
func (p Params) Descending() bool {
	return p.SortDirection == SortDescending
}

// Page is the envelope returned by every paginated operation: the window of
// items plus the echoed window parameters and unwindowed totals.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// NewPage wraps one window of items in the page envelope. totalItems is the
// unwindowed count; totalPages is derived by ceiling division.
func NewPage[T any](items []T, params Params, totalItems int) Page[T] {
	params = params.Normalize()

	totalPages := 0
	if totalItems > 0 {
		totalPages = (totalItems + params.Limit - 1) / params.Limit
	}

	if items == nil {
		items = []T{}
	}

	return Page[T]{
		Items:      items,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// Window slices one page out of an already-sorted in-memory slice. A page
// past the end yields an empty window, not an error.
func Window[T any](items []T, params Params) []T {
	params = params.Normalize()

	start := params.Offset()
	if start >= len(items) {
		return []T{}
	}

	end := start + params.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
