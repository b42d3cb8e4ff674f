package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/domain"
)

// ArtistFilter is the payload for the backend's artist filter endpoint.
type ArtistFilter struct {
	Search        string   `json:"search,omitempty"`
	CategoryIDs   []string `json:"categoryIds,omitempty"`
	MinExperience *int     `json:"minExperience,omitempty"`
	MaxExperience *int     `json:"maxExperience,omitempty"`
}

// ArtistInput is the admin create/update payload for an artist.
type ArtistInput struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	ProfileImage string `json:"profile_image"`
	CategoryID   string `json:"category_id" validate:"required"`
	Experience   int    `json:"experience" validate:"gte=0"`
	Introduction string `json:"introduction"`
}

// ListArtists fetches one backend page of artists.
func (c *Client) ListArtists(ctx context.Context, page int) ([]domain.Artist, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/v1/artist/?page=%d", page), "", nil)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, req, "fetch artists")
	if err != nil {
		return nil, err
	}

	var artists []domain.Artist
	if err := decodeInto(raw, &artists, "fetch artists"); err != nil {
		return nil, err
	}
	return artists, nil
}

// ArtistDetails fetches a single artist profile.
func (c *Client) ArtistDetails(ctx context.Context, id string) (*domain.Artist, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/v1/artist/details/"+url.PathEscape(id), "", nil)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, req, "fetch artist details")
	if err != nil {
		return nil, err
	}

	var artist domain.Artist
	if err := decodeInto(raw, &artist, "fetch artist details"); err != nil {
		return nil, err
	}
	return &artist, nil
}

// FilterArtists runs a backend-side artist filter.
func (c *Client) FilterArtists(ctx context.Context, filter ArtistFilter) ([]domain.Artist, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/v1/artist/filter", "", filter)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, req, "filter artists")
	if err != nil {
		return nil, err
	}

	var artists []domain.Artist
	if err := decodeInto(raw, &artists, "filter artists"); err != nil {
		return nil, err
	}
	return artists, nil
}

// CreateArtist creates an artist profile (admin).
func (c *Client) CreateArtist(ctx context.Context, token string, input ArtistInput) (*domain.Artist, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/v1/artist/", token, input)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, req, "create artist")
	if err != nil {
		return nil, err
	}

	var artist domain.Artist
	if err := decodeInto(raw, &artist, "create artist"); err != nil {
		return nil, err
	}
	return &artist, nil
}

// UpdateArtist updates an artist profile (admin).
func (c *Client) UpdateArtist(ctx context.Context, token, id string, input ArtistInput) (*domain.Artist, error) {
	req, err := c.newRequest(ctx, http.MethodPut, "/v1/artist/"+url.PathEscape(id), token, input)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, req, "update artist")
	if err != nil {
		return nil, err
	}

	var artist domain.Artist
	if err := decodeInto(raw, &artist, "update artist"); err != nil {
		return nil, err
	}
	return &artist, nil
}

// DeleteArtist deletes an artist profile (admin).
func (c *Client) DeleteArtist(ctx context.Context, token, id string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/v1/artist/"+url.PathEscape(id), token, nil)
	if err != nil {
		return err
	}

	_, err = c.do(ctx, req, "delete artist")
	return err
}
