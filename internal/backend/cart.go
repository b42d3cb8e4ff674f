package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/domain"
	"github.com/PrajwalKamdi/Women-Empower-sub000/pkg/errors"
	"github.com/PrajwalKamdi/Women-Empower-sub000/pkg/httpclient"
)

// AddCartInput is the payload for adding a product to the cart.
type AddCartInput struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=1"`
}

// UpdateCartInput is the payload for changing a cart entry's quantity.
type UpdateCartInput struct {
	Quantity int `json:"quantity" validate:"gte=1"`
}

// GetCartItems fetches the caller's cart. Without a token the result is an
// empty cart, no request made; a 401/403 from the backend also degrades to an
// empty cart so a stale session reads like a signed-out one.
func (c *Client) GetCartItems(ctx context.Context, token, userID string) ([]domain.CartItem, error) {
	if token == "" {
		return nil, nil
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/v1/cart/"+url.PathEscape(userID), token, nil)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, req, "fetch cart")
	if err != nil {
		var appErr *errors.AppError
		if errors.As(err, &appErr) && httpclient.IsAuthStatus(appErr.Status) {
			return nil, nil
		}
		return nil, err
	}

	var items []domain.CartItem
	if err := decodeInto(raw, &items, "fetch cart"); err != nil {
		return nil, err
	}
	return items, nil
}

// AddCartItem adds a product to the cart.
func (c *Client) AddCartItem(ctx context.Context, token string, input AddCartInput) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/v1/cart/", token, input)
	if err != nil {
		return err
	}

	_, err = c.do(ctx, req, "add to cart")
	return err
}

// UpdateCartItem changes the quantity on a cart entry.
func (c *Client) UpdateCartItem(ctx context.Context, token, entryID string, input UpdateCartInput) error {
	req, err := c.newRequest(ctx, http.MethodPut, "/v1/cart/"+url.PathEscape(entryID), token, input)
	if err != nil {
		return err
	}

	_, err = c.do(ctx, req, "update cart item")
	return err
}

// RemoveCartItem deletes a cart entry.
func (c *Client) RemoveCartItem(ctx context.Context, token, entryID string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/v1/cart/"+url.PathEscape(entryID), token, nil)
	if err != nil {
		return err
	}

	_, err = c.do(ctx, req, "remove cart item")
	return err
}
