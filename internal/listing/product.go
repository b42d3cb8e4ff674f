package listing

import (
	"strings"

	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/domain"
)

// Named sort options as the storefront presents them.
const (
	SortPopular      = "Popular"
	SortPriceLowHigh = "Price: Low to High"
	SortPriceHighLow = "Price: High to Low"
	SortNameAZ       = "Name A-Z"
	SortNameZA       = "Name Z-A"
	SortExperience   = "Experience"
	SortDateSoonest  = "Date: Soonest"
)

// ProductSearch matches the term against the product name and description,
// case-insensitively. An empty term matches everything.
func ProductSearch(term string) Predicate[domain.Product] {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}
	return func(p domain.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term)
	}
}

// ProductCategories keeps products belonging to any of the given categories.
// An empty set matches everything.
func ProductCategories(ids []string) Predicate[domain.Product] {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return func(p domain.Product) bool {
		_, ok := set[p.CategoryID]
		return ok
	}
}

// ProductPriceRange keeps products whose effective price falls in
// [min, max]. Nil bounds are open.
func ProductPriceRange(min, max *float64) Predicate[domain.Product] {
	if min == nil && max == nil {
		return nil
	}
	return func(p domain.Product) bool {
		price := p.EffectivePrice()
		if min != nil && price < *min {
			return false
		}
		if max != nil && price > *max {
			return false
		}
		return true
	}
}

// ProductTrending keeps only trending products.
func ProductTrending() Predicate[domain.Product] {
	return func(p domain.Product) bool { return p.Trending }
}

// ProductSort maps a named sort option to its comparator. "Popular" orders
// trending products first with a stable tie-break; unknown options preserve
// input order.
func ProductSort(option string) Less[domain.Product] {
	switch option {
	case SortPopular:
		return func(a, b domain.Product) bool { return a.Trending && !b.Trending }
	case SortPriceLowHigh:
		return func(a, b domain.Product) bool { return a.EffectivePrice() < b.EffectivePrice() }
	case SortPriceHighLow:
		return func(a, b domain.Product) bool { return a.EffectivePrice() > b.EffectivePrice() }
	case SortNameAZ:
		return func(a, b domain.Product) bool { return a.Name < b.Name }
	case SortNameZA:
		return func(a, b domain.Product) bool { return a.Name > b.Name }
	default:
		return nil
	}
}
