package backend

import (
	"context"
	"net/http"

	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/domain"
)

// LoginInput starts the two-step login: the backend mails an OTP to the
// given address.
type LoginInput struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyOTPInput completes the login.
type VerifyOTPInput struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}

// RegisterInput creates a new account.
type RegisterInput struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,min=10,max=15"`
}

// LoginResult is the OTP verification response: a bearer token plus a
// possibly partial user profile.
type LoginResult struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// RequestOTP asks the backend to send a one-time password.
func (c *Client) RequestOTP(ctx context.Context, input LoginInput) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/v1/login/", "", input)
	if err != nil {
		return err
	}

	_, err = c.do(ctx, req, "request otp")
	return err
}

// VerifyOTP exchanges the OTP for a token and user profile.
func (c *Client) VerifyOTP(ctx context.Context, input VerifyOTPInput) (*LoginResult, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/v1/login/otp", "", input)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, req, "verify otp")
	if err != nil {
		return nil, err
	}

	var result LoginResult
	if err := decodeInto(raw, &result, "verify otp"); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetProfile fetches the full profile for the authenticated user.
func (c *Client) GetProfile(ctx context.Context, token string) (*domain.User, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/v1/user/profile", token, nil)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, req, "fetch profile")
	if err != nil {
		return nil, err
	}

	var user domain.User
	if err := decodeInto(raw, &user, "fetch profile"); err != nil {
		return nil, err
	}
	return &user, nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/v1/user/", "", input)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, req, "register user")
	if err != nil {
		return nil, err
	}

	var user domain.User
	if err := decodeInto(raw, &user, "register user"); err != nil {
		return nil, err
	}
	return &user, nil
}
