package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/domain"
	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/store"
	"github.com/PrajwalKamdi/Women-Empower-sub000/pkg/health"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	sessions := newTestSessions(t)
	logger := newTestLogger()

	return NewRouter(Deps{
		ServiceName: "storefront-test",
		Catalog:     NewCatalogHandler(&fakeCatalog{products: catalogProducts(3)}, newTestResolver(), logger),
		Cart:        NewCartHandler(store.NewCartStore(&fakeCartBackend{}, nil, logger), logger),
		Wishlist:    NewWishlistHandler(store.NewWishlistStore(&fakeWishlistBackend{}, nil, logger), logger),
		Auth:        NewAuthHandler(sessions, logger),
		Admin:       NewAdminHandler(nil, logger),
		Sessions:    sessions,
		Health:      health.NewHandler(),
		Logger:      logger,
	})
}

func TestRouter_ListingRouteServes(t *testing.T) {
	router := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(SessionHeader))
	assert.Contains(t, rr.Header().Get("Cache-Control"), "max-age=60")
}

func TestRouter_HealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/health/live", "/health/ready"} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rr.Code, path)
	}
}

func TestRouter_AdminRequiresBearerToken(t *testing.T) {
	router := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/v1/admin/products/p1", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRouter_AdminRejectsNonAdminRole(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/products/p1", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, domain.RoleCustomer))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestRateLimiter_Returns429OverBurst(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	var limited bool
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
		req.RemoteAddr = "10.0.0.1:4000"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code == http.StatusTooManyRequests {
			limited = true
			assert.Contains(t, rr.Body.String(), "too many requests")
			break
		}
	}
	assert.True(t, limited)
}

func TestRateLimiter_SeparateClientsIndependent(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRequest(http.MethodGet, "/", nil)
	first.RemoteAddr = "10.0.0.1:4000"
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, first)
	require.Equal(t, http.StatusOK, rr.Code)

	second := httptest.NewRequest(http.MethodGet, "/", nil)
	second.RemoteAddr = "10.0.0.2:4000"
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, second)
	assert.Equal(t, http.StatusOK, rr.Code)
}
