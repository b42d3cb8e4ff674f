package pagination

import (
	"net/http"
	"strconv"
)

// Viewport identifies the client breakpoint a listing page is rendered for.
// Mobile layouts show fewer cards per page than desktop grids.
type Viewport string

const (
	ViewportDesktop Viewport = "desktop"
	ViewportMobile  Viewport = "mobile"
)

// Default page sizes per viewport for listing grids.
const (
	DesktopPageSize = 16
	MobilePageSize  = 9
	MaxPageSize     = 100
)

// Params holds pagination parameters extracted from query strings.
type Params struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

// DefaultParams returns first-page defaults for a desktop grid.
func DefaultParams() Params {
	return Params{
		Page:    1,
		PerPage: DesktopPageSize,
	}
}

// PageSizeFor returns the listing page size for the given viewport.
func PageSizeFor(v Viewport) int {
	if v == ViewportMobile {
		return MobilePageSize
	}
	return DesktopPageSize
}

// FromRequest extracts pagination parameters from an HTTP request. The
// `view` parameter selects the per-viewport default page size, which an
// explicit `per_page` overrides.
func FromRequest(r *http.Request) Params {
	p := DefaultParams()

	if view := r.URL.Query().Get("view"); view != "" {
		p.PerPage = PageSizeFor(Viewport(view))
	}

	if page := r.URL.Query().Get("page"); page != "" {
		if v, err := strconv.Atoi(page); err == nil && v > 0 {
			p.Page = v
		}
	}

	if perPage := r.URL.Query().Get("per_page"); perPage != "" {
		if v, err := strconv.Atoi(perPage); err == nil && v > 0 && v <= MaxPageSize {
			p.PerPage = v
		}
	}

	return p
}

// Result wraps a paginated response.
type Result[T any] struct {
	Data       []T  `json:"data"`
	TotalCount int  `json:"total_count"`
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// NewResult creates a paginated result.
func NewResult[T any](data []T, totalCount int, params Params) Result[T] {
	totalPages := totalCount / params.PerPage
	if totalCount%params.PerPage > 0 {
		totalPages++
	}

	if data == nil {
		data = []T{}
	}

	return Result[T]{
		Data:       data,
		TotalCount: totalCount,
		Page:       params.Page,
		PerPage:    params.PerPage,
		TotalPages: totalPages,
		HasNext:    params.Page < totalPages,
		HasPrev:    params.Page > 1,
	}
}
