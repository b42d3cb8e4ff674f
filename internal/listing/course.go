package listing

import (
	"strings"

	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/domain"
)

// CourseSearch matches the term against the course title and description.
func CourseSearch(term string) Predicate[domain.Course] {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}
	return func(c domain.Course) bool {
		return strings.Contains(strings.ToLower(c.Title), term) ||
			strings.Contains(strings.ToLower(c.Description), term)
	}
}

// CourseCategories keeps courses in any of the given categories.
func CourseCategories(ids []string) Predicate[domain.Course] {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return func(c domain.Course) bool {
		_, ok := set[c.CategoryID]
		return ok
	}
}

// CourseLevels keeps courses at any of the given difficulty levels.
func CourseLevels(levels []string) Predicate[domain.Course] {
	if len(levels) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(levels))
	for _, l := range levels {
		set[strings.ToLower(l)] = struct{}{}
	}
	return func(c domain.Course) bool {
		_, ok := set[strings.ToLower(c.Level)]
		return ok
	}
}

// CoursePriceRange keeps courses whose effective price falls in [min, max].
func CoursePriceRange(min, max *float64) Predicate[domain.Course] {
	if min == nil && max == nil {
		return nil
	}
	return func(c domain.Course) bool {
		price := c.EffectivePrice()
		if min != nil && price < *min {
			return false
		}
		if max != nil && price > *max {
			return false
		}
		return true
	}
}

// CourseSort maps a named sort option to its comparator.
func CourseSort(option string) Less[domain.Course] {
	switch option {
	case SortPriceLowHigh:
		return func(a, b domain.Course) bool { return a.EffectivePrice() < b.EffectivePrice() }
	case SortPriceHighLow:
		return func(a, b domain.Course) bool { return a.EffectivePrice() > b.EffectivePrice() }
	case SortNameAZ:
		return func(a, b domain.Course) bool { return a.Title < b.Title }
	case SortNameZA:
		return func(a, b domain.Course) bool { return a.Title > b.Title }
	default:
		return nil
	}
}
