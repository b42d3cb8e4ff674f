package domain

import (
	"strings"
	"time"
)

// Category groups products, artists, and courses.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// UnknownCategoryName is the display fallback when a category id cannot be
// resolved against the fetched category list.
const UnknownCategoryName = "Unknown Category"

// CategoryNameByID builds a lookup over the given categories and resolves the
// id, falling back to UnknownCategoryName. All display surfaces share this
// resolver so the fallback string stays consistent.
func CategoryNameByID(categories []Category, id string) string {
	for i := range categories {
		if categories[i].ID == id {
			return categories[i].Name
		}
	}
	return UnknownCategoryName
}

// Artist represents a craftsperson selling on the marketplace.
type Artist struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ProfileImage string    `json:"profile_image"`
	CategoryID   string    `json:"category_id"`
	CategoryName string    `json:"category_name,omitempty"`
	Experience   int       `json:"experience"`
	JoinedAt     time.Time `json:"joined_at"`
	Introduction string    `json:"introduction"`
}

// Course difficulty levels.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelExpert       = "expert"
)

// Course represents a craft course run by a coordinator.
type Course struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Thumbnail   string  `json:"thumbnail"`
	Coordinator string  `json:"coordinator"`
	CategoryID  string  `json:"category_id"`
	Lessons     int     `json:"lessons"`
	Level       string  `json:"level"`
	Price       string  `json:"price"`
	Discount    float64 `json:"discount"`
}

// PriceValue parses the decimal price string.
func (c *Course) PriceValue() float64 {
	return parsePrice(c.Price)
}

// EffectivePrice returns the price after applying the course's discount.
func (c *Course) EffectivePrice() float64 {
	return DiscountedPrice(c.PriceValue(), c.Discount)
}

// Event lifecycle statuses.
const (
	EventUpcoming  = "upcoming"
	EventOngoing   = "ongoing"
	EventCompleted = "completed"
)

// Event represents a marketplace event such as an exhibition or workshop.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Banner      string    `json:"banner"`
	CategoryID  string    `json:"category_id"`
	StartsAt    time.Time `json:"starts_at"`
	Status      string    `json:"status"`
	Keywords    string    `json:"keywords"`
}

// KeywordList splits the comma-separated keywords field, trimming whitespace
// and dropping empty entries.
func (e *Event) KeywordList() []string {
	if e.Keywords == "" {
		return nil
	}
	parts := strings.Split(e.Keywords, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if kw := strings.TrimSpace(p); kw != "" {
			out = append(out, kw)
		}
	}
	return out
}
