package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/domain"
	"github.com/PrajwalKamdi/Women-Empower-sub000/pkg/errors"
	"github.com/PrajwalKamdi/Women-Empower-sub000/pkg/httpclient"
)

// AddWishlistInput is the payload for saving a product to the wishlist.
type AddWishlistInput struct {
	ProductID string `json:"product_id" validate:"required"`
}

// GetWishlistItems fetches the caller's wishlist. Without a token the result
// is empty with no request made, and a 401/403 also degrades to empty so an
// expired session behaves like a signed-out one.
func (c *Client) GetWishlistItems(ctx context.Context, token, userID string) ([]domain.WishlistItem, error) {
	if token == "" {
		return nil, nil
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/v1/wishlist/"+url.PathEscape(userID), token, nil)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, req, "fetch wishlist")
	if err != nil {
		var appErr *errors.AppError
		if errors.As(err, &appErr) && httpclient.IsAuthStatus(appErr.Status) {
			return nil, nil
		}
		return nil, err
	}

	var items []domain.WishlistItem
	if err := decodeInto(raw, &items, "fetch wishlist"); err != nil {
		return nil, err
	}
	return items, nil
}

// AddWishlistItem saves a product to the wishlist.
func (c *Client) AddWishlistItem(ctx context.Context, token string, input AddWishlistInput) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/v1/wishlist", token, input)
	if err != nil {
		return err
	}

	_, err = c.do(ctx, req, "add to wishlist")
	return err
}

// RemoveWishlistItem deletes a wishlist entry by its entry id, not the
// product id. Callers resolve the entry id from a loaded wishlist first.
func (c *Client) RemoveWishlistItem(ctx context.Context, token, entryID string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/v1/wishlist/"+url.PathEscape(entryID), token, nil)
	if err != nil {
		return err
	}

	_, err = c.do(ctx, req, "remove from wishlist")
	return err
}
