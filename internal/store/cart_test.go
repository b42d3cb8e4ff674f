package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/backend"
	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/domain"
)

// fakeCartBackend records mutations and serves a scripted cart.
type fakeCartBackend struct {
	items      []domain.CartItem
	added      []backend.AddCartInput
	updated    map[string]int
	removed    []string
	fetchCalls int
	fetchErr   error
	mutateErr  error
}

func (f *fakeCartBackend) GetCartItems(_ context.Context, token, _ string) ([]domain.CartItem, error) {
	f.fetchCalls++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	if token == "" {
		return nil, nil
	}
	return f.items, nil
}

func (f *fakeCartBackend) AddCartItem(_ context.Context, _ string, input backend.AddCartInput) error {
	if f.mutateErr != nil {
		return f.mutateErr
	}
	f.added = append(f.added, input)
	return nil
}

func (f *fakeCartBackend) UpdateCartItem(_ context.Context, _, entryID string, input backend.UpdateCartInput) error {
	if f.mutateErr != nil {
		return f.mutateErr
	}
	if f.updated == nil {
		f.updated = make(map[string]int)
	}
	f.updated[entryID] = input.Quantity
	return nil
}

func (f *fakeCartBackend) RemoveCartItem(_ context.Context, _, entryID string) error {
	if f.mutateErr != nil {
		return f.mutateErr
	}
	f.removed = append(f.removed, entryID)
	return nil
}

func authedSession() Session {
	return Session{
		ID:            "sid-1",
		Token:         "tok-1",
		User:          domain.User{ID: "u1"},
		Authenticated: true,
	}
}

func TestCartStore_Add_RequiresLogin(t *testing.T) {
	fake := &fakeCartBackend{}
	cart := NewCartStore(fake, nil, newTestLogger())

	err := cart.Add(context.Background(), Session{}, "p1", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login")
	assert.Empty(t, fake.added, "no backend call without a session")
}

func TestCartStore_Add_ClampsQuantityAndRefetches(t *testing.T) {
	fake := &fakeCartBackend{
		items: []domain.CartItem{{ID: "e1", ProductID: "p1", Quantity: 1}},
	}
	cart := NewCartStore(fake, nil, newTestLogger())

	err := cart.Add(context.Background(), authedSession(), "p1", 0)
	require.NoError(t, err)

	require.Len(t, fake.added, 1)
	assert.Equal(t, 1, fake.added[0].Quantity, "quantity 0 clamps to 1")
	assert.Equal(t, 1, fake.fetchCalls, "mutation triggers a canonical re-fetch")
	assert.Equal(t, 1, cart.ItemCount(authedSession()))
}

func TestCartStore_UpdateQuantity_NeverBelowMinimum(t *testing.T) {
	fake := &fakeCartBackend{
		items: []domain.CartItem{{ID: "e1", ProductID: "p1", Quantity: 1}},
	}
	cart := NewCartStore(fake, nil, newTestLogger())

	err := cart.UpdateQuantity(context.Background(), authedSession(), "e1", -3)
	require.NoError(t, err)
	assert.Equal(t, 1, fake.updated["e1"], "negative quantity clamps to 1")
}

func TestCartStore_Remove_RefetchesCanonicalState(t *testing.T) {
	fake := &fakeCartBackend{items: nil}
	cart := NewCartStore(fake, nil, newTestLogger())

	err := cart.Remove(context.Background(), authedSession(), "e1")
	require.NoError(t, err)
	assert.Equal(t, []string{"e1"}, fake.removed)
	assert.Equal(t, 1, fake.fetchCalls)
}

func TestCartStore_MutationErrorPropagates(t *testing.T) {
	fake := &fakeCartBackend{mutateErr: assert.AnError}
	cart := NewCartStore(fake, nil, newTestLogger())

	err := cart.Add(context.Background(), authedSession(), "p1", 1)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 0, fake.fetchCalls, "failed mutation skips the re-fetch")
}

func TestCartStore_Items_AnonymousIsEmptyWithoutFetch(t *testing.T) {
	fake := &fakeCartBackend{}
	cart := NewCartStore(fake, nil, newTestLogger())

	items := cart.Items(context.Background(), Session{})
	assert.Empty(t, items)
	assert.Equal(t, 0, fake.fetchCalls)
}

func TestCartStore_Items_FetchFailureServesCachedCopy(t *testing.T) {
	fake := &fakeCartBackend{
		items: []domain.CartItem{{ID: "e1", ProductID: "p1", Quantity: 2}},
	}
	cart := NewCartStore(fake, nil, newTestLogger())
	sess := authedSession()

	require.Len(t, cart.Items(context.Background(), sess), 1)

	fake.fetchErr = assert.AnError
	items := cart.Items(context.Background(), sess)
	assert.Len(t, items, 1, "read degrades to last known copy, not an error")
}

func TestCartStore_PureDerivations(t *testing.T) {
	fake := &fakeCartBackend{
		items: []domain.CartItem{
			{ID: "e1", ProductID: "p1", Quantity: 2},
			{ID: "e2", ProductID: "p2", Quantity: 1},
		},
	}
	cart := NewCartStore(fake, nil, newTestLogger())
	sess := authedSession()
	cart.Items(context.Background(), sess)

	before := fake.fetchCalls
	assert.Equal(t, 3, cart.ItemCount(sess))
	assert.True(t, cart.IsInCart(sess, "p1"))
	assert.False(t, cart.IsInCart(sess, "p9"))
	assert.Equal(t, 2, cart.QuantityOf(sess, "p1"))
	assert.Equal(t, 0, cart.QuantityOf(sess, "p9"))
	assert.Equal(t, before, fake.fetchCalls, "derivations never hit the backend")
}
