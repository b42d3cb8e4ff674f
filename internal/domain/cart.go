package domain

// MinQuantity is the lowest quantity a cart item may hold. Update requests
// below this are clamped before they reach the backend.
const MinQuantity = 1

// CartItem represents a single line in a user's cart. The product fields are
// a denormalized snapshot used for display; the authoritative product record
// lives on the backend.
type CartItem struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Name      string  `json:"name"`
	Thumbnail string  `json:"thumbnail"`
	Price     string  `json:"price"`
	Discount  float64 `json:"discount"`
}

// EffectivePrice returns the snapshot price after discount. Displayed prices
// are always derived, never stored.
func (i *CartItem) EffectivePrice() float64 {
	return DiscountedPrice(parsePrice(i.Price), i.Discount)
}

// LineTotal returns the discounted price multiplied by quantity.
func (i *CartItem) LineTotal() float64 {
	return i.EffectivePrice() * float64(i.Quantity)
}

// Cart is the in-memory working copy of a user's cart.
type Cart struct {
	UserID string     `json:"user_id"`
	Items  []CartItem `json:"items"`
}

// ItemCount returns the total quantity across all items.
func (c *Cart) ItemCount() int {
	var count int
	for i := range c.Items {
		count += c.Items[i].Quantity
	}
	return count
}

// Total returns the discounted sum of all lines.
func (c *Cart) Total() float64 {
	var total float64
	for i := range c.Items {
		total += c.Items[i].LineTotal()
	}
	return total
}

// FindByProduct returns the index of the item for the given product id, or -1.
func (c *Cart) FindByProduct(productID string) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// ClampQuantity enforces the minimum quantity invariant.
func ClampQuantity(qty int) int {
	if qty < MinQuantity {
		return MinQuantity
	}
	return qty
}
