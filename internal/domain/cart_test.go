package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampQuantity_NeverBelowMinimum(t *testing.T) {
	assert.Equal(t, 1, ClampQuantity(0))
	assert.Equal(t, 1, ClampQuantity(-5))
	assert.Equal(t, 1, ClampQuantity(1))
	assert.Equal(t, 7, ClampQuantity(7))
}

func TestCart_ItemCountAndTotal(t *testing.T) {
	cart := Cart{Items: []CartItem{
		{ProductID: "p1", Quantity: 2, Price: "100.00", Discount: 0},
		{ProductID: "p2", Quantity: 1, Price: "200.00", Discount: 50},
	}}

	assert.Equal(t, 3, cart.ItemCount())
	assert.InDelta(t, 300.0, cart.Total(), 0.001)
}

func TestCart_FindByProduct(t *testing.T) {
	cart := Cart{Items: []CartItem{
		{ID: "e1", ProductID: "p1"},
		{ID: "e2", ProductID: "p2"},
	}}

	assert.Equal(t, 1, cart.FindByProduct("p2"))
	assert.Equal(t, -1, cart.FindByProduct("p9"))
}

func TestWishlist_EntryIDForProduct(t *testing.T) {
	list := Wishlist{Items: []WishlistItem{
		{EntryID: "w1", ProductID: "p1"},
		{EntryID: "w2", ProductID: "p2"},
	}}

	id, ok := list.EntryIDForProduct("p2")
	assert.True(t, ok)
	assert.Equal(t, "w2", id)

	_, ok = list.EntryIDForProduct("p9")
	assert.False(t, ok)
	assert.False(t, list.Contains("p9"))
}
