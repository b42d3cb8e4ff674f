package http

import (
	"log/slog"
	"net/http"

	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/backend"
	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/store"
	apperrors "github.com/PrajwalKamdi/Women-Empower-sub000/pkg/errors"
	"github.com/PrajwalKamdi/Women-Empower-sub000/pkg/httputil"
	"github.com/PrajwalKamdi/Women-Empower-sub000/pkg/validator"
)

// AuthHandler serves the two-step OTP login flow, registration, logout, and
// the current-session probe.
type AuthHandler struct {
	sessions *store.SessionStore
	logger   *slog.Logger
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(sessions *store.SessionStore, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{sessions: sessions, logger: logger}
}

// LoginRequest is step one: ask for a one-time code.
type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyRequest is step two: exchange the code for a session.
type VerifyRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,min=10,max=15"`
}

// Login serves POST /api/v1/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	if err := h.sessions.RequestOTP(r.Context(), req.Email); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Success: true,
		Message: "verification code sent",
	})
}

// Verify serves POST /api/v1/auth/verify.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	sid := r.Header.Get(SessionHeader)
	sess, err := h.sessions.VerifyOTP(r.Context(), sid, req.Email, req.OTP)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.OK(sess.User))
}

// Logout serves POST /api/v1/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sid := r.Header.Get(SessionHeader)
	h.sessions.Logout(r.Context(), sid)
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Success: true,
		Message: "logged out",
	})
}

// Register serves POST /api/v1/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	user, err := h.sessions.Register(r.Context(), backend.RegisterInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.OK(user))
}

// Me serves GET /api/v1/auth/me: the current session's user, 401 when
// anonymous.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	if !sess.Authenticated {
		httputil.WriteError(w, r, apperrors.Unauthorized("not logged in"), h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.OK(sess.User))
}
