package domain

import (
	"strconv"
)

// Product represents a marketplace listing created by an artist.
// Price travels as a decimal string on the wire; use PriceValue and
// DiscountedPrice for numeric work.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Thumbnail   string   `json:"thumbnail"`
	Gallery     []string `json:"gallery,omitempty"`
	CategoryID  string   `json:"category_id"`
	ArtistID    string   `json:"artist_id"`
	Price       string   `json:"price"`
	Discount    float64  `json:"discount"`
	Trending    bool     `json:"trending"`
	Wishlisted  bool     `json:"wishlisted"`
}

// PriceValue parses the decimal price string. Unparseable prices are treated
// as zero so a single malformed record cannot break a listing page.
func (p *Product) PriceValue() float64 {
	return parsePrice(p.Price)
}

// EffectivePrice returns the price after applying the product's discount.
func (p *Product) EffectivePrice() float64 {
	return DiscountedPrice(p.PriceValue(), p.Discount)
}

// DiscountedPrice applies a percentage discount to a price. The discount is
// clamped to [0, 100], so the result is never negative and never exceeds the
// input price. A discount of 0 returns the price unchanged.
func DiscountedPrice(price, discount float64) float64 {
	if discount < 0 {
		discount = 0
	}
	if discount > 100 {
		discount = 100
	}
	return price * (1 - discount/100)
}

func parsePrice(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
