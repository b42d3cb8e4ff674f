package listing

import (
	"strings"

	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/domain"
)

// EventSearch matches the term against the event title, description, and
// keywords.
func EventSearch(term string) Predicate[domain.Event] {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}
	return func(e domain.Event) bool {
		if strings.Contains(strings.ToLower(e.Title), term) ||
			strings.Contains(strings.ToLower(e.Description), term) {
			return true
		}
		for _, kw := range e.KeywordList() {
			if strings.Contains(strings.ToLower(kw), term) {
				return true
			}
		}
		return false
	}
}

// EventStatuses keeps events in any of the given lifecycle statuses.
func EventStatuses(statuses []string) Predicate[domain.Event] {
	if len(statuses) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(statuses))
	for _, s := range statuses {
		set[strings.ToLower(s)] = struct{}{}
	}
	return func(e domain.Event) bool {
		_, ok := set[strings.ToLower(e.Status)]
		return ok
	}
}

// EventCategories keeps events in any of the given categories.
func EventCategories(ids []string) Predicate[domain.Event] {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return func(e domain.Event) bool {
		_, ok := set[e.CategoryID]
		return ok
	}
}

// EventSort maps a named sort option to its comparator. "Date: Soonest"
// orders by start time ascending.
func EventSort(option string) Less[domain.Event] {
	switch option {
	case SortDateSoonest:
		return func(a, b domain.Event) bool { return a.StartsAt.Before(b.StartsAt) }
	case SortNameAZ:
		return func(a, b domain.Event) bool { return a.Title < b.Title }
	case SortNameZA:
		return func(a, b domain.Event) bool { return a.Title > b.Title }
	default:
		return nil
	}
}
