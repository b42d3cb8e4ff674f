package store

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/backend"
	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/domain"
	apperrors "github.com/PrajwalKamdi/Women-Empower-sub000/pkg/errors"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeAuth is a scriptable authBackend.
type fakeAuth struct {
	otpRequests []string
	verifyToken string
	verifyUser  domain.User
	verifyErr   error
	profile     *domain.User
	profileErr  error
	registered  *domain.User
}

func (f *fakeAuth) RequestOTP(_ context.Context, input backend.LoginInput) error {
	f.otpRequests = append(f.otpRequests, input.Email)
	return nil
}

func (f *fakeAuth) VerifyOTP(_ context.Context, _ backend.VerifyOTPInput) (*backend.LoginResult, error) {
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	return &backend.LoginResult{Token: f.verifyToken, User: f.verifyUser}, nil
}

func (f *fakeAuth) GetProfile(_ context.Context, _ string) (*domain.User, error) {
	return f.profile, f.profileErr
}

func (f *fakeAuth) Register(_ context.Context, _ backend.RegisterInput) (*domain.User, error) {
	return f.registered, nil
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "u1",
		"exp":     exp.Unix(),
	})
	s, err := tok.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return s
}

func newSessionStore(t *testing.T, auth authBackend) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewSessionStore(rdb, auth, nil, time.Hour, newTestLogger()), mr
}

func TestTokenExpired(t *testing.T) {
	now := time.Now()

	assert.False(t, TokenExpired(signedToken(t, now.Add(time.Hour)), now))
	assert.True(t, TokenExpired(signedToken(t, now.Add(-time.Hour)), now))
	assert.True(t, TokenExpired("not-a-jwt", now), "malformed tokens count as expired")
}

func TestSessionStore_LoadRoundTrip(t *testing.T) {
	auth := &fakeAuth{
		verifyToken: signedToken(t, time.Now().Add(time.Hour)),
		verifyUser:  domain.User{ID: "u1", Email: "a@b.c"},
		profileErr:  apperrors.ErrUpstream,
	}
	store, _ := newSessionStore(t, auth)
	ctx := context.Background()

	_, err := store.VerifyOTP(ctx, "sid-1", "a@b.c", "123456")
	require.NoError(t, err)

	sess := store.Load(ctx, "sid-1")
	assert.True(t, sess.Authenticated)
	assert.Equal(t, "u1", sess.UserID())
	assert.Equal(t, auth.verifyToken, sess.Token)
}

func TestSessionStore_LoadMissingSession_Anonymous(t *testing.T) {
	store, _ := newSessionStore(t, &fakeAuth{})

	sess := store.Load(context.Background(), "never-seen")
	assert.False(t, sess.Authenticated)
	assert.Empty(t, sess.Token)
}

func TestSessionStore_ExpiredTokenDiscarded(t *testing.T) {
	store, mr := newSessionStore(t, &fakeAuth{})
	ctx := context.Background()

	rawUser, _ := json.Marshal(domain.User{ID: "u1"})
	mr.HSet("session:sid-1", authTokenField, signedToken(t, time.Now().Add(-time.Minute)))
	mr.HSet("session:sid-1", authUserField, string(rawUser))

	sess := store.Load(ctx, "sid-1")
	assert.False(t, sess.Authenticated)
	assert.False(t, mr.Exists("session:sid-1"), "expired credentials are removed")
}

func TestSessionStore_VerifyOTP_ProfileFailureKeepsPartialUser(t *testing.T) {
	auth := &fakeAuth{
		verifyToken: signedToken(t, time.Now().Add(time.Hour)),
		verifyUser:  domain.User{ID: "u1", Email: "a@b.c"},
		profileErr:  apperrors.ServiceUnavailable("profile service down"),
	}
	store, _ := newSessionStore(t, auth)

	sess, err := store.VerifyOTP(context.Background(), "sid-1", "a@b.c", "123456")
	require.NoError(t, err, "profile fetch failure must not fail login")
	assert.Equal(t, "u1", sess.UserID())
	assert.Empty(t, sess.User.Name, "partial profile stays authoritative")
}

func TestSessionStore_VerifyOTP_ProfileUpgradesUser(t *testing.T) {
	auth := &fakeAuth{
		verifyToken: signedToken(t, time.Now().Add(time.Hour)),
		verifyUser:  domain.User{ID: "u1"},
		profile:     &domain.User{ID: "u1", Name: "Asha", Email: "a@b.c", Role: domain.RoleCustomer},
	}
	store, _ := newSessionStore(t, auth)

	sess, err := store.VerifyOTP(context.Background(), "sid-1", "a@b.c", "123456")
	require.NoError(t, err)
	assert.Equal(t, "Asha", sess.User.Name)

	reloaded := store.Load(context.Background(), "sid-1")
	assert.Equal(t, "Asha", reloaded.User.Name, "full profile is what got persisted")
}

func TestSessionStore_Logout_ClearsSynchronously(t *testing.T) {
	auth := &fakeAuth{
		verifyToken: signedToken(t, time.Now().Add(time.Hour)),
		verifyUser:  domain.User{ID: "u1"},
		profileErr:  apperrors.ErrUpstream,
	}
	store, mr := newSessionStore(t, auth)
	ctx := context.Background()

	_, err := store.VerifyOTP(ctx, "sid-1", "a@b.c", "123456")
	require.NoError(t, err)
	require.True(t, mr.Exists("session:sid-1"))

	store.Logout(ctx, "sid-1")
	assert.False(t, mr.Exists("session:sid-1"))
	assert.False(t, store.Load(ctx, "sid-1").Authenticated)
}

func TestSessionStore_NotifiesObserversOnLoginAndLogout(t *testing.T) {
	auth := &fakeAuth{
		verifyToken: signedToken(t, time.Now().Add(time.Hour)),
		verifyUser:  domain.User{ID: "u1"},
		profileErr:  apperrors.ErrUpstream,
	}
	store, _ := newSessionStore(t, auth)

	var calls int
	unsubscribe := store.Subscribe(func() { calls++ })

	_, err := store.VerifyOTP(context.Background(), "sid-1", "a@b.c", "123456")
	require.NoError(t, err)
	store.Logout(context.Background(), "sid-1")
	assert.Equal(t, 2, calls)

	unsubscribe()
	store.Logout(context.Background(), "sid-1")
	assert.Equal(t, 2, calls, "unsubscribed observers stop receiving")
}
