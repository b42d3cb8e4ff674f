package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginRequired_MessageContainsLogin(t *testing.T) {
	err := LoginRequired("add items to your cart")

	assert.Contains(t, err.Message, "login")
	assert.Equal(t, http.StatusUnauthorized, err.Status)
	assert.ErrorIs(t, err, ErrLoginRequired)
}

func TestUpstream_FallbackMessageEmbedsStatus(t *testing.T) {
	err := Upstream(http.StatusBadGateway, "")
	assert.Equal(t, "request failed (status 502)", err.Message)

	kept := Upstream(http.StatusNotFound, "product does not exist")
	assert.Equal(t, "product does not exist", kept.Message)
}

func TestHTTPStatus_Mapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{NotFound("product", "p1"), http.StatusNotFound},
		{InvalidInput("bad"), http.StatusBadRequest},
		{Unauthorized("no"), http.StatusUnauthorized},
		{Forbidden("no"), http.StatusForbidden},
		{LoginRequired("checkout"), http.StatusUnauthorized},
		{ServiceUnavailable("down"), http.StatusServiceUnavailable},
		{Wrap(ErrNotFound, "wrapped"), http.StatusNotFound},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(tc.err), "%v", tc.err)
	}
}

func TestAppError_UnwrapSupportsIsAndAs(t *testing.T) {
	err := Wrap(LoginRequired("save"), "wishlist")

	assert.True(t, Is(err, ErrLoginRequired))

	var appErr *AppError
	assert.True(t, As(err, &appErr))
	assert.Equal(t, "LOGIN_REQUIRED", appErr.Code)
}
