package httpclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	apperrors "github.com/PrajwalKamdi/Women-Empower-sub000/pkg/errors"
)

// BackendErrorBody mirrors the error shape returned by the marketplace
// backend. Error responses carry either a "message" or an "error" field; some
// endpoints return plain text instead of JSON.
type BackendErrorBody struct {
	Success *bool  `json:"success,omitempty"`
	Message string `json:"message,omitempty"`
	ErrMsg  string `json:"error,omitempty"`
}

// ParseResponseError reads the body of a non-2xx HTTP response and translates
// it into an AppError. JSON bodies contribute their message/error field; plain
// text bodies and empty bodies fall back to a templated message embedding the
// HTTP status. The response body is fully consumed and closed.
//
// The caller should only invoke this when resp.StatusCode indicates an error.
func ParseResponseError(resp *http.Response, action string) error {
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB limit
	if err != nil {
		return apperrors.Upstream(resp.StatusCode,
			fmt.Sprintf("failed to %s (status %d)", action, resp.StatusCode))
	}

	message := extractMessage(resp.Header.Get("Content-Type"), bodyBytes)
	if message == "" {
		message = fmt.Sprintf("failed to %s (status %d)", action, resp.StatusCode)
	}

	return mapUpstreamError(resp.StatusCode, message)
}

// extractMessage pulls a human-readable message out of an error body. JSON
// bodies are probed for "message" then "error"; text bodies are used verbatim.
func extractMessage(contentType string, body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}

	if strings.Contains(contentType, "application/json") || strings.HasPrefix(trimmed, "{") {
		var parsed BackendErrorBody
		if json.Unmarshal(body, &parsed) == nil {
			if parsed.Message != "" {
				return parsed.Message
			}
			if parsed.ErrMsg != "" {
				return parsed.ErrMsg
			}
		}
		return ""
	}

	return trimmed
}

// mapUpstreamError translates a backend HTTP status into an AppError that
// preserves the error semantics.
func mapUpstreamError(status int, message string) error {
	switch status {
	case http.StatusNotFound:
		return &apperrors.AppError{
			Code:    "NOT_FOUND",
			Message: message,
			Status:  http.StatusNotFound,
			Err:     apperrors.ErrNotFound,
		}
	case http.StatusBadRequest:
		return apperrors.InvalidInput(message)
	case http.StatusUnauthorized:
		return apperrors.Unauthorized(message)
	case http.StatusForbidden:
		return apperrors.Forbidden(message)
	case http.StatusConflict:
		return apperrors.Conflict(message)
	case http.StatusServiceUnavailable:
		return apperrors.ServiceUnavailable(message)
	default:
		return apperrors.Upstream(status, message)
	}
}

// IsAuthStatus returns true for 401/403 responses. Read paths use this to
// degrade silently to empty results for anonymous or stale sessions instead
// of logging an error.
func IsAuthStatus(status int) bool {
	return status == http.StatusUnauthorized || status == http.StatusForbidden
}

// IsClientError returns true if the HTTP status code is a 4xx client error.
func IsClientError(status int) bool {
	return status >= 400 && status < 500
}
