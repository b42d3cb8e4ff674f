package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/backend"
	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/domain"
	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/store"
)

type fakeCartBackend struct {
	items   []domain.CartItem
	added   []backend.AddCartInput
	removed []string
}

func (f *fakeCartBackend) GetCartItems(_ context.Context, token, _ string) ([]domain.CartItem, error) {
	if token == "" {
		return nil, nil
	}
	return f.items, nil
}

func (f *fakeCartBackend) AddCartItem(_ context.Context, _ string, input backend.AddCartInput) error {
	f.added = append(f.added, input)
	return nil
}

func (f *fakeCartBackend) UpdateCartItem(context.Context, string, string, backend.UpdateCartInput) error {
	return nil
}

func (f *fakeCartBackend) RemoveCartItem(_ context.Context, _, entryID string) error {
	f.removed = append(f.removed, entryID)
	return nil
}

func withSession(r *http.Request, sess store.Session) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), sessionCtxKey, sess))
}

func testSession() store.Session {
	return store.Session{
		ID:            "sid-1",
		Token:         "tok-1",
		User:          domain.User{ID: "u1"},
		Authenticated: true,
	}
}

func TestAddItem_WithoutLogin_ErrorMentionsLogin(t *testing.T) {
	cart := store.NewCartStore(&fakeCartBackend{}, nil, newTestLogger())
	h := NewCartHandler(cart, newTestLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items",
		strings.NewReader(`{"product_id":"p1","quantity":1}`))
	rr := httptest.NewRecorder()
	h.AddItem(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "login")
}

func TestAddItem_ReturnsRefreshedCart(t *testing.T) {
	fake := &fakeCartBackend{
		items: []domain.CartItem{{ID: "e1", ProductID: "p1", Quantity: 1, Price: "100.00"}},
	}
	cart := store.NewCartStore(fake, nil, newTestLogger())
	h := NewCartHandler(cart, newTestLogger())

	req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items",
		strings.NewReader(`{"product_id":"p1","quantity":1}`)), testSession())
	rr := httptest.NewRecorder()
	h.AddItem(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var env struct {
		Success bool `json:"success"`
		Data    struct {
			Items     []domain.CartItem `json:"items"`
			ItemCount int               `json:"item_count"`
			Total     float64           `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	assert.True(t, env.Success)
	require.Len(t, env.Data.Items, 1)
	assert.Equal(t, 1, env.Data.ItemCount)
	assert.InDelta(t, 100.0, env.Data.Total, 0.001)
}

func TestGetCart_AnonymousIsEmpty(t *testing.T) {
	cart := store.NewCartStore(&fakeCartBackend{}, nil, newTestLogger())
	h := NewCartHandler(cart, newTestLogger())

	rr := httptest.NewRecorder()
	h.GetCart(rr, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"item_count":0`)
}

func TestRemoveItem_UsesEntryID(t *testing.T) {
	fake := &fakeCartBackend{}
	cart := store.NewCartStore(fake, nil, newTestLogger())
	h := NewCartHandler(cart, newTestLogger())

	r := chi.NewRouter()
	r.Delete("/cart/items/{id}", h.RemoveItem)

	req := withSession(httptest.NewRequest(http.MethodDelete, "/cart/items/e42", nil), testSession())
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{"e42"}, fake.removed)
}
