package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/domain"
)

// ProductFilter is the payload for the backend's product filter endpoint.
// MinPrice/MaxPrice are plain numbers, e.g. the "₹500 - ₹750" range becomes
// {minPrice: 500, maxPrice: 750}.
type ProductFilter struct {
	Search      string   `json:"search,omitempty"`
	CategoryIDs []string `json:"categoryIds,omitempty"`
	MinPrice    *float64 `json:"minPrice,omitempty"`
	MaxPrice    *float64 `json:"maxPrice,omitempty"`
	Trending    *bool    `json:"trending,omitempty"`
}

// ProductInput is the admin create/update payload for a product.
type ProductInput struct {
	Name        string   `json:"name" validate:"required,min=1,max=200"`
	Description string   `json:"description"`
	Thumbnail   string   `json:"thumbnail" validate:"required"`
	Gallery     []string `json:"gallery,omitempty"`
	CategoryID  string   `json:"category_id" validate:"required"`
	ArtistID    string   `json:"artist_id" validate:"required"`
	Price       string   `json:"price" validate:"required"`
	Discount    float64  `json:"discount" validate:"gte=0,lte=100"`
	Trending    bool     `json:"trending"`
}

// ListProducts fetches one backend page of products.
func (c *Client) ListProducts(ctx context.Context, page int) ([]domain.Product, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/v1/product/?page=%d", page), "", nil)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, req, "fetch products")
	if err != nil {
		return nil, err
	}

	var products []domain.Product
	if err := decodeInto(raw, &products, "fetch products"); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches a single product by id.
func (c *Client) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/v1/product/"+url.PathEscape(id), "", nil)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, req, "fetch product")
	if err != nil {
		return nil, err
	}

	var product domain.Product
	if err := decodeInto(raw, &product, "fetch product"); err != nil {
		return nil, err
	}
	return &product, nil
}

// SearchProducts runs a backend text search.
func (c *Client) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/v1/product/search/"+url.PathEscape(query), "", nil)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, req, "search products")
	if err != nil {
		return nil, err
	}

	var products []domain.Product
	if err := decodeInto(raw, &products, "search products"); err != nil {
		return nil, err
	}
	return products, nil
}

// FilterProducts runs a backend-side product filter.
func (c *Client) FilterProducts(ctx context.Context, filter ProductFilter) ([]domain.Product, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/v1/product/filter", "", filter)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, req, "filter products")
	if err != nil {
		return nil, err
	}

	var products []domain.Product
	if err := decodeInto(raw, &products, "filter products"); err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct creates a product (admin).
func (c *Client) CreateProduct(ctx context.Context, token string, input ProductInput) (*domain.Product, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/v1/product/", token, input)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, req, "create product")
	if err != nil {
		return nil, err
	}

	var product domain.Product
	if err := decodeInto(raw, &product, "create product"); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct updates a product (admin).
func (c *Client) UpdateProduct(ctx context.Context, token, id string, input ProductInput) (*domain.Product, error) {
	req, err := c.newRequest(ctx, http.MethodPut, "/v1/product/"+url.PathEscape(id), token, input)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, req, "update product")
	if err != nil {
		return nil, err
	}

	var product domain.Product
	if err := decodeInto(raw, &product, "update product"); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct deletes a product (admin).
func (c *Client) DeleteProduct(ctx context.Context, token, id string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/v1/product/"+url.PathEscape(id), token, nil)
	if err != nil {
		return err
	}

	_, err = c.do(ctx, req, "delete product")
	return err
}
