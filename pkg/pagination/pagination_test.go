package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRequest_ViewportSelectsDefaultPageSize(t *testing.T) {
	desktop := FromRequest(httptest.NewRequest("GET", "/?view=desktop", nil))
	assert.Equal(t, DesktopPageSize, desktop.PerPage)

	mobile := FromRequest(httptest.NewRequest("GET", "/?view=mobile", nil))
	assert.Equal(t, MobilePageSize, mobile.PerPage)
}

func TestFromRequest_PerPageOverridesViewport(t *testing.T) {
	p := FromRequest(httptest.NewRequest("GET", "/?view=mobile&per_page=25", nil))
	assert.Equal(t, 25, p.PerPage)
}

func TestFromRequest_IgnoresInvalidValues(t *testing.T) {
	p := FromRequest(httptest.NewRequest("GET", "/?page=-2&per_page=9999", nil))
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DesktopPageSize, p.PerPage)
}

func TestNewResult_TotalPagesRoundsUp(t *testing.T) {
	r := NewResult(make([]int, 16), 20, Params{Page: 1, PerPage: 16})
	assert.Equal(t, 2, r.TotalPages)
	assert.True(t, r.HasNext)
	assert.False(t, r.HasPrev)

	last := NewResult(make([]int, 4), 20, Params{Page: 2, PerPage: 16})
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrev)
}

func TestNewResult_NilDataBecomesEmptySlice(t *testing.T) {
	r := NewResult[int](nil, 0, Params{Page: 1, PerPage: 16})
	assert.NotNil(t, r.Data)
	assert.Empty(t, r.Data)
	assert.Equal(t, 0, r.TotalPages)
}
