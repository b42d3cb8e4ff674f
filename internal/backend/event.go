package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/domain"
)

// EventInput is the admin create/update payload for a marketplace event.
type EventInput struct {
	Title       string    `json:"title" validate:"required,min=1,max=200"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Banner      string    `json:"banner"`
	CategoryID  string    `json:"category_id"`
	StartsAt    time.Time `json:"starts_at" validate:"required"`
	Status      string    `json:"status" validate:"omitempty,oneof=upcoming ongoing completed"`
	Keywords    string    `json:"keywords"`
}

// ListEvents fetches one backend page of events.
func (c *Client) ListEvents(ctx context.Context, page int) ([]domain.Event, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/v1/event/?page=%d", page), "", nil)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, req, "fetch events")
	if err != nil {
		return nil, err
	}

	var events []domain.Event
	if err := decodeInto(raw, &events, "fetch events"); err != nil {
		return nil, err
	}
	return events, nil
}

// GetEvent fetches a single event by id.
func (c *Client) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/v1/event/"+url.PathEscape(id), "", nil)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, req, "fetch event")
	if err != nil {
		return nil, err
	}

	var event domain.Event
	if err := decodeInto(raw, &event, "fetch event"); err != nil {
		return nil, err
	}
	return &event, nil
}

// CreateEvent creates an event (admin).
func (c *Client) CreateEvent(ctx context.Context, token string, input EventInput) (*domain.Event, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/v1/event/", token, input)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, req, "create event")
	if err != nil {
		return nil, err
	}

	var event domain.Event
	if err := decodeInto(raw, &event, "create event"); err != nil {
		return nil, err
	}
	return &event, nil
}

// UpdateEvent updates an event (admin).
func (c *Client) UpdateEvent(ctx context.Context, token, id string, input EventInput) (*domain.Event, error) {
	req, err := c.newRequest(ctx, http.MethodPut, "/v1/event/"+url.PathEscape(id), token, input)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, req, "update event")
	if err != nil {
		return nil, err
	}

	var event domain.Event
	if err := decodeInto(raw, &event, "update event"); err != nil {
		return nil, err
	}
	return &event, nil
}

// DeleteEvent deletes an event (admin).
func (c *Client) DeleteEvent(ctx context.Context, token, id string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/v1/event/"+url.PathEscape(id), token, nil)
	if err != nil {
		return err
	}

	_, err = c.do(ctx, req, "delete event")
	return err
}
