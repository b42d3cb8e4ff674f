package listing

import (
	"strings"

	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/domain"
)

// ArtistSearch matches the term against the artist name and introduction.
func ArtistSearch(term string) Predicate[domain.Artist] {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}
	return func(a domain.Artist) bool {
		return strings.Contains(strings.ToLower(a.Name), term) ||
			strings.Contains(strings.ToLower(a.Introduction), term)
	}
}

// ArtistCategories keeps artists working in any of the given categories.
func ArtistCategories(ids []string) Predicate[domain.Artist] {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return func(a domain.Artist) bool {
		_, ok := set[a.CategoryID]
		return ok
	}
}

// ArtistExperienceRange keeps artists with experience in [min, max] years.
func ArtistExperienceRange(min, max *int) Predicate[domain.Artist] {
	if min == nil && max == nil {
		return nil
	}
	return func(a domain.Artist) bool {
		if min != nil && a.Experience < *min {
			return false
		}
		if max != nil && a.Experience > *max {
			return false
		}
		return true
	}
}

// ArtistSort maps a named sort option to its comparator. "Experience"
// orders most experienced first.
func ArtistSort(option string) Less[domain.Artist] {
	switch option {
	case SortExperience:
		return func(a, b domain.Artist) bool { return a.Experience > b.Experience }
	case SortNameAZ:
		return func(a, b domain.Artist) bool { return a.Name < b.Name }
	case SortNameZA:
		return func(a, b domain.Artist) bool { return a.Name > b.Name }
	default:
		return nil
	}
}
