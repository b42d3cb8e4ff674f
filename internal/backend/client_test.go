package backend

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/PrajwalKamdi/Women-Empower-sub000/pkg/errors"
	"github.com/PrajwalKamdi/Women-Empower-sub000/pkg/httpclient"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := httpclient.DefaultConfig()
	cfg.MaxRetries = 0
	return New(srv.URL, httpclient.New(cfg), newTestLogger()), srv
}

func TestListProducts_DecodesEnvelope(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/product/", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":[{"id":"p1","name":"Clay Pot","price":"250.00"}]}`))
	})

	products, err := client.ListProducts(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, "Clay Pot", products[0].Name)
}

func TestListProducts_UnwrapsNestedData(t *testing.T) {
	// Some list endpoints double-wrap: {data: {data: [...]}}.
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"data":[{"id":"p1"}]}}`))
	})

	products, err := client.ListProducts(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
}

func TestListProducts_NullDataIsEmpty(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":null}`))
	})

	products, err := client.ListProducts(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestGetProduct_ErrorBodyMessagePreserved(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"message":"product does not exist"}`))
	})

	_, err := client.GetProduct(context.Background(), "missing")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "product does not exist", appErr.Message)
}

func TestGetProduct_PlainTextErrorFallsBackToTemplate(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(""))
	})

	_, err := client.GetProduct(context.Background(), "p1")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Message, "fetch product")
	assert.Contains(t, appErr.Message, "400")
}

func TestFilterProducts_BuildsExactPricePayload(t *testing.T) {
	var captured map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/product/filter", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":[]}`))
	})

	min, max := 500.0, 750.0
	_, err := client.FilterProducts(context.Background(), ProductFilter{MinPrice: &min, MaxPrice: &max})
	require.NoError(t, err)

	// The price range payload is exactly {minPrice: 500, maxPrice: 750}.
	assert.Equal(t, map[string]any{"minPrice": 500.0, "maxPrice": 750.0}, captured)
}

func TestGetCartItems_NoToken_NoRequestMade(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	items, err := client.GetCartItems(context.Background(), "", "u1")
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, int32(0), calls.Load())
}

func TestGetCartItems_SendsBearerToken(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.Equal(t, "/v1/cart/u1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":[{"id":"e1","product_id":"p1","quantity":2}]}`))
	})

	items, err := client.GetCartItems(context.Background(), "tok-1", "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestGetWishlistItems_AuthStatusDegradesToEmpty(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})

		items, err := client.GetWishlistItems(context.Background(), "stale-token", "u1")
		assert.NoError(t, err, "status %d", status)
		assert.Empty(t, items, "status %d", status)
	}
}

func TestGetWishlistItems_OtherErrorsPropagate(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetWishlistItems(context.Background(), "tok", "u1")
	assert.Error(t, err)
}

func TestVerifyOTP_ReturnsTokenAndUser(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/login/otp", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"token":"tok-1","user":{"id":"u1","email":"a@b.c"}}}`))
	})

	result, err := client.VerifyOTP(context.Background(), VerifyOTPInput{Email: "a@b.c", OTP: "123456"})
	require.NoError(t, err)
	assert.Equal(t, "tok-1", result.Token)
	assert.Equal(t, "u1", result.User.ID)
}
