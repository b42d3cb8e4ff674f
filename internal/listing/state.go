package listing

import "github.com/PrajwalKamdi/Women-Empower-sub000/pkg/pagination"

// State tracks one listing view's search term, filters, sort option, and
// current page. Changing the search term or any filter snaps the page back
// to 1 so the user never lands on an out-of-range page of the new result set.
type State struct {
	Search  string
	Filters map[string]string
	SortBy  string
	Page    int
	PerPage int
}

// NewState returns a first-page state sized for the given viewport.
func NewState(viewport pagination.Viewport) *State {
	return &State{
		Filters: make(map[string]string),
		Page:    1,
		PerPage: pagination.PageSizeFor(viewport),
	}
}

// SetSearch updates the search term, resetting the page when it changed.
func (s *State) SetSearch(term string) {
	if term == s.Search {
		return
	}
	s.Search = term
	s.Page = 1
}

// SetFilter updates one named filter, resetting the page when it changed.
// An empty value clears the filter.
func (s *State) SetFilter(name, value string) {
	if s.Filters[name] == value {
		return
	}
	if value == "" {
		delete(s.Filters, name)
	} else {
		s.Filters[name] = value
	}
	s.Page = 1
}

// ClearFilters removes every filter and the search term.
func (s *State) ClearFilters() {
	if s.Search == "" && len(s.Filters) == 0 {
		return
	}
	s.Search = ""
	s.Filters = make(map[string]string)
	s.Page = 1
}

// SetSort changes the sort option. The page is kept since the result set
// size is unchanged.
func (s *State) SetSort(option string) {
	s.SortBy = option
}

// SetPage moves to the given 1-indexed page.
func (s *State) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.Page = page
}

// Params exposes the state's pagination parameters.
func (s *State) Params() pagination.Params {
	return pagination.Params{Page: s.Page, PerPage: s.PerPage}
}
