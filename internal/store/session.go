package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"

	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/backend"
	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/domain"
	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/event"
)

// Persisted field names inside a session hash.
const (
	authTokenField = "auth_token"
	authUserField  = "auth_user"
)

const sessionKeyPrefix = "session:"

// Session is the resolved state for one storefront session.
type Session struct {
	ID            string
	Token         string
	User          domain.User
	Authenticated bool
}

// UserID returns the session's user id, empty when anonymous.
func (s Session) UserID() string {
	return s.User.ID
}

// authBackend is the slice of the backend client the session store uses.
type authBackend interface {
	RequestOTP(ctx context.Context, input backend.LoginInput) error
	VerifyOTP(ctx context.Context, input backend.VerifyOTPInput) (*backend.LoginResult, error)
	GetProfile(ctx context.Context, token string) (*domain.User, error)
	Register(ctx context.Context, input backend.RegisterInput) (*domain.User, error)
}

// SessionStore persists the auth token and user profile per session in
// Redis and runs the two-step OTP login against the backend.
type SessionStore struct {
	notifier
	rdb      redis.UniversalClient
	auth     authBackend
	activity *event.ActivityPublisher
	ttl      time.Duration
	logger   *slog.Logger
}

// NewSessionStore creates a session store. ttl bounds how long an idle
// session survives in Redis.
func NewSessionStore(rdb redis.UniversalClient, auth authBackend, activity *event.ActivityPublisher, ttl time.Duration, log *slog.Logger) *SessionStore {
	return &SessionStore{
		rdb:      rdb,
		auth:     auth,
		activity: activity,
		ttl:      ttl,
		logger:   log,
	}
}

func sessionKey(sid string) string {
	return sessionKeyPrefix + sid
}

// TokenExpired checks the token's expiry claim without verifying the
// signature; the backend is the authority on validity, the storefront only
// avoids presenting tokens it already knows are dead. Malformed tokens count
// as expired. Tokens without an expiry claim never expire here.
func TokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}

// Load resolves the session for the given id. A missing id, missing hash, or
// expired token yields an anonymous session; expired credentials are
// discarded from Redis on the way.
func (s *SessionStore) Load(ctx context.Context, sid string) Session {
	if sid == "" {
		return Session{}
	}

	vals, err := s.rdb.HGetAll(ctx, sessionKey(sid)).Result()
	if err != nil {
		s.logger.WarnContext(ctx, "failed to load session",
			slog.String("error", err.Error()),
		)
		return Session{ID: sid}
	}

	token := vals[authTokenField]
	if token == "" {
		return Session{ID: sid}
	}

	if TokenExpired(token, time.Now()) {
		s.discard(ctx, sid)
		return Session{ID: sid}
	}

	var user domain.User
	if raw := vals[authUserField]; raw != "" {
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			s.logger.WarnContext(ctx, "corrupt session user, discarding",
				slog.String("error", err.Error()),
			)
			s.discard(ctx, sid)
			return Session{ID: sid}
		}
	}

	return Session{ID: sid, Token: token, User: user, Authenticated: true}
}

// RequestOTP starts the two-step login by asking the backend to mail a
// one-time code.
func (s *SessionStore) RequestOTP(ctx context.Context, email string) error {
	return s.auth.RequestOTP(ctx, backend.LoginInput{Email: email})
}

// VerifyOTP completes the login: it exchanges the code for a token and user,
// persists both under the session, and then tries to upgrade the partial
// profile with a full fetch. The profile fetch is best-effort; when it fails
// the partial profile from verification stays authoritative.
func (s *SessionStore) VerifyOTP(ctx context.Context, sid, email, otp string) (Session, error) {
	result, err := s.auth.VerifyOTP(ctx, backend.VerifyOTPInput{Email: email, OTP: otp})
	if err != nil {
		return Session{ID: sid}, err
	}

	user := result.User
	if full, err := s.auth.GetProfile(ctx, result.Token); err == nil && full != nil {
		user = *full
	} else if err != nil {
		s.logger.DebugContext(ctx, "profile fetch after login failed, keeping partial profile",
			slog.String("error", err.Error()),
		)
	}

	if err := s.persist(ctx, sid, result.Token, user); err != nil {
		return Session{ID: sid}, err
	}

	s.activity.Emit(ctx, event.TypeUserLoggedIn, user.ID, map[string]string{"email": user.Email})
	s.notify()

	return Session{ID: sid, Token: result.Token, User: user, Authenticated: true}, nil
}

// Logout clears the persisted token and user synchronously. No backend call
// is made; the token simply stops being presented.
func (s *SessionStore) Logout(ctx context.Context, sid string) {
	sess := s.Load(ctx, sid)
	s.discard(ctx, sid)

	if sess.Authenticated {
		s.activity.Emit(ctx, event.TypeUserLoggedOut, sess.UserID(), nil)
	}
	s.notify()
}

// Register creates a new account through the backend.
func (s *SessionStore) Register(ctx context.Context, input backend.RegisterInput) (*domain.User, error) {
	return s.auth.Register(ctx, input)
}

func (s *SessionStore) persist(ctx context.Context, sid, token string, user domain.User) error {
	rawUser, err := json.Marshal(user)
	if err != nil {
		return err
	}

	key := sessionKey(sid)
	if err := s.rdb.HSet(ctx, key, authTokenField, token, authUserField, string(rawUser)).Err(); err != nil {
		return err
	}
	return s.rdb.Expire(ctx, key, s.ttl).Err()
}

func (s *SessionStore) discard(ctx context.Context, sid string) {
	if err := s.rdb.Del(ctx, sessionKey(sid)).Err(); err != nil {
		s.logger.WarnContext(ctx, "failed to discard session",
			slog.String("error", err.Error()),
		)
	}
}
