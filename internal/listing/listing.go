// Package listing filters, sorts and paginates in-memory lists such as the
// fund catalogue, stock quotes, news articles and portfolio holdings.
package listing

import (
	"cmp"
	"slices"
	"strings"

	apperrors "financogram/internal/errors"
	"financogram/internal/pagination"
)

// SortOrder is the direction of a sort.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// AllCategories disables the category filter, as does an empty category.
const AllCategories = "all"

// Query selects a page of a list.
type Query struct {
	Search   string    `form:"search"`
	Category string    `form:"category"`
	SortBy   string    `form:"sort_by"`
	Order    SortOrder `form:"order" binding:"omitempty,sort_order"`
	pagination.PageRequest
}

// Fields tells FilterSortPaginate how to read an item.
type Fields[T any] struct {
	// Search returns the texts a search term is matched against.
	Search func(T) []string
	// Category returns the item's category for equality filtering.
	Category func(T) string
	// MatchCategory replaces equality filtering when set.
	MatchCategory func(item T, category string) bool
	// Sort maps a sort key to an ascending comparator.
	Sort map[string]func(a, b T) int
}

// FilterSortPaginate applies q to items and returns the requested page. The
// input slice is never modified. Sorting is stable in both directions, so
// items with equal keys keep their input order.
func FilterSortPaginate[T any](items []T, q Query, f Fields[T]) (*pagination.PageResponse[T], error) {
	compare, err := comparator(q, f)
	if err != nil {
		return nil, err
	}

	filtered := Filter(items, q.Search, q.Category, f)
	if compare != nil {
		slices.SortStableFunc(filtered, compare)
	}

	req := q.PageRequest
	req.Defaults(pagination.DefaultPageSize)
	page := pagination.NewPageResponse(pagination.Slice(filtered, req), req.Page, req.PageSize, int64(len(filtered)))
	return &page, nil
}

// Filter returns a new slice holding the items that match search and category.
func Filter[T any](items []T, search, category string, f Fields[T]) []T {
	term := strings.ToLower(strings.TrimSpace(search))
	category = strings.TrimSpace(category)
	filterCategory := category != "" && !strings.EqualFold(category, AllCategories)

	out := make([]T, 0, len(items))
	for _, item := range items {
		if term != "" && !matchesSearch(item, term, f) {
			continue
		}
		if filterCategory && !matchesCategory(item, category, f) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesSearch[T any](item T, term string, f Fields[T]) bool {
	if f.Search == nil {
		return true
	}
	for _, text := range f.Search(item) {
		if strings.Contains(strings.ToLower(text), term) {
			return true
		}
	}
	return false
}

func matchesCategory[T any](item T, category string, f Fields[T]) bool {
	if f.MatchCategory != nil {
		return f.MatchCategory(item, category)
	}
	if f.Category == nil {
		return true
	}
	return f.Category(item) == category
}

func comparator[T any](q Query, f Fields[T]) (func(a, b T) int, error) {
	if q.SortBy == "" {
		return nil, nil
	}
	asc, ok := f.Sort[q.SortBy]
	if !ok {
		return nil, apperrors.NewFieldError("sort_by", "unsupported sort key "+q.SortBy)
	}

	switch q.Order {
	case "", Ascending:
		return asc, nil
	case Descending:
		return func(a, b T) int { return asc(b, a) }, nil
	default:
		return nil, apperrors.NewFieldError("order", "must be asc or desc")
	}
}

// Text orders strings case-insensitively.
func Text[T any](get func(T) string) func(a, b T) int {
	return func(a, b T) int {
		return strings.Compare(strings.ToLower(get(a)), strings.ToLower(get(b)))
	}
}

// Number orders any ordered value.
func Number[T any, V cmp.Ordered](get func(T) V) func(a, b T) int {
	return func(a, b T) int {
		return cmp.Compare(get(a), get(b))
	}
}
