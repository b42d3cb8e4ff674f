package domain

// WishlistItem represents a product saved in a user's wishlist. EntryID is the
// backend's wishlist-row id and is distinct from the product id; deletion goes
// through the entry id.
type WishlistItem struct {
	EntryID   string  `json:"entry_id"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Thumbnail string  `json:"thumbnail"`
	Price     string  `json:"price"`
	Discount  float64 `json:"discount"`
}

// EffectivePrice returns the snapshot price after discount.
func (i *WishlistItem) EffectivePrice() float64 {
	return DiscountedPrice(parsePrice(i.Price), i.Discount)
}

// Wishlist is the in-memory working copy of a user's wishlist.
type Wishlist struct {
	UserID string         `json:"user_id"`
	Items  []WishlistItem `json:"items"`
}

// EntryIDForProduct resolves the wishlist-entry id for a product. Returns
// empty string and false when the product is not in the list.
func (w *Wishlist) EntryIDForProduct(productID string) (string, bool) {
	for i := range w.Items {
		if w.Items[i].ProductID == productID {
			return w.Items[i].EntryID, true
		}
	}
	return "", false
}

// Contains reports whether the product is in the wishlist.
func (w *Wishlist) Contains(productID string) bool {
	_, ok := w.EntryIDForProduct(productID)
	return ok
}
