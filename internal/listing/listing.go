// Package listing is the shared filter/sort/paginate engine behind the
// product, course, artist, and event listing pages. The four listings differ
// only in their predicates and comparators, so one parametrized pipeline
// serves them all.
package listing

import (
	"sort"

	"github.com/PrajwalKamdi/Women-Empower-sub000/pkg/pagination"
)

// Predicate reports whether an item survives a filter.
type Predicate[T any] func(T) bool

// Less is a strict-weak-ordering comparator. Sorting is always stable, so
// items that compare equal keep their input order.
type Less[T any] func(a, b T) bool

// Filter returns the items matching every predicate. Nil predicates are
// skipped. The input slice is never modified.
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if matches(item, preds) {
			out = append(out, item)
		}
	}
	return out
}

func matches[T any](item T, preds []Predicate[T]) bool {
	for _, pred := range preds {
		if pred != nil && !pred(item) {
			return false
		}
	}
	return true
}

// Sort returns a sorted copy of items. A nil comparator returns the copy
// unsorted.
func Sort[T any](items []T, less Less[T]) []T {
	out := make([]T, len(items))
	copy(out, items)
	if less != nil {
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	}
	return out
}

// Page slices one 1-indexed page out of items. The result holds
// min(perPage, len(items) − (page−1)×perPage) items, never fewer than zero.
func Page[T any](items []T, page, perPage int) []T {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}

	start := (page - 1) * perPage
	if start >= len(items) {
		return []T{}
	}

	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// Query bundles one listing request: filter, then sort, then paginate.
type Query[T any] struct {
	Predicates []Predicate[T]
	Less       Less[T]
	Params     pagination.Params
}

// Apply runs the pipeline over items and wraps the page in pagination
// metadata computed against the filtered count.
func (q Query[T]) Apply(items []T) pagination.Result[T] {
	filtered := Filter(items, q.Predicates...)
	sorted := Sort(filtered, q.Less)
	page := Page(sorted, q.Params.Page, q.Params.PerPage)
	return pagination.NewResult(page, len(filtered), q.Params)
}
