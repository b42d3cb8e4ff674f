// Package backend holds the typed clients for the marketplace REST API.
// Each resource gets a thin wrapper that builds the URL, injects the bearer
// token when one is supplied, decodes the {success, message, data} envelope,
// and normalizes error bodies through pkg/httpclient.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/PrajwalKamdi/Women-Empower-sub000/pkg/httpclient"
)

// HTTPDoer is the interface for executing HTTP requests. Both
// httpclient.Client and httpclient.CircuitBreakerClient satisfy this.
type HTTPDoer interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// Client is the shared transport for all resource wrappers.
type Client struct {
	baseURL string
	http    HTTPDoer
	logger  *slog.Logger
}

// New creates a backend client rooted at baseURL (e.g. "http://localhost:5000").
func New(baseURL string, doer HTTPDoer, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    doer,
		logger:  logger,
	}
}

// envelope is the backend's standard response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// newRequest builds a request against the backend. An empty token means no
// Authorization header.
func (c *Client) newRequest(ctx context.Context, method, path, token string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", method, err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}

// do executes the request and returns the raw data payload, with non-2xx
// responses normalized into AppErrors. The action string feeds the templated
// "failed to X (status N)" fallback message.
func (c *Client) do(ctx context.Context, req *http.Request, action string) (json.RawMessage, error) {
	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, httpclient.ParseResponseError(resp, action)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("%s: read response: %w", action, err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", action, err)
	}

	return unwrap(env.Data), nil
}

// unwrap flattens one extra level of {"data": ...} nesting, which some
// backend list endpoints produce.
func unwrap(raw json.RawMessage) json.RawMessage {
	var nested struct {
		Data json.RawMessage `json:"data"`
	}
	if json.Unmarshal(raw, &nested) == nil && len(nested.Data) > 0 {
		return nested.Data
	}
	return raw
}

// decodeInto unmarshals the payload into dst, treating a missing payload as
// the zero value so callers see empty slices instead of decode errors.
func decodeInto(raw json.RawMessage, dst any, action string) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%s: decode payload: %w", action, err)
	}
	return nil
}
