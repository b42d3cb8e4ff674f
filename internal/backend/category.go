package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/domain"
)

// CategoryInput is the admin create/update payload for a category.
type CategoryInput struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Image string `json:"image" validate:"required"`
}

// ListCategories fetches all categories.
func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/v1/category/", "", nil)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, req, "fetch categories")
	if err != nil {
		return nil, err
	}

	var categories []domain.Category
	if err := decodeInto(raw, &categories, "fetch categories"); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory creates a category (admin).
func (c *Client) CreateCategory(ctx context.Context, token string, input CategoryInput) (*domain.Category, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/v1/category/", token, input)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, req, "create category")
	if err != nil {
		return nil, err
	}

	var category domain.Category
	if err := decodeInto(raw, &category, "create category"); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory updates a category (admin).
func (c *Client) UpdateCategory(ctx context.Context, token, id string, input CategoryInput) (*domain.Category, error) {
	req, err := c.newRequest(ctx, http.MethodPut, "/v1/category/"+url.PathEscape(id), token, input)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, req, "update category")
	if err != nil {
		return nil, err
	}

	var category domain.Category
	if err := decodeInto(raw, &category, "update category"); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory deletes a category (admin).
func (c *Client) DeleteCategory(ctx context.Context, token, id string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/v1/category/"+url.PathEscape(id), token, nil)
	if err != nil {
		return err
	}

	_, err = c.do(ctx, req, "delete category")
	return err
}
