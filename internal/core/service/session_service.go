package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub001/internal/core/domain"
	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub001/internal/core/ports"
)

// Generic fallbacks when the service response carries no usable message.
const (
	genericLoginMsg   = "Login failed. Please try again."
	genericSignupMsg  = "Signup failed. Please try again."
	genericProfileMsg = "Profile update failed. Please try again."
)

// SessionService owns the live session, keeps it persisted in the store, and
// keeps the shared bearer token in sync so every outbound call stays
// authenticated.
type SessionService struct {
	api    ports.AuthAPI
	store  ports.SessionStore
	bearer ports.TokenSink
	log    zerolog.Logger

	mu      sync.Mutex
	session domain.Session
}

var (
	_ ports.SessionService = (*SessionService)(nil)
	_ ports.TokenSource    = (*SessionService)(nil)
)

func NewSessionService(api ports.AuthAPI, store ports.SessionStore, bearer ports.TokenSink, log zerolog.Logger) *SessionService {
	return &SessionService{
		api:     api,
		store:   store,
		bearer:  bearer,
		log:     log,
		session: domain.Session{Loading: true},
	}
}

// Hydrate restores the session from the store. It runs once at startup.
// A corrupt user blob clears both persisted keys and leaves the session
// unauthenticated; the failure is logged, never surfaced. Loading is cleared
// exactly once on every path, and callers must not trust Token or User until
// it is.
func (s *SessionService) Hydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.session.Loading = false }()

	token, _, err := s.store.Get(ctx, ports.StoreKeyToken)
	if err != nil {
		s.log.Error().Err(err).Msg("session hydrate: reading token")
		return
	}
	blob, _, err := s.store.Get(ctx, ports.StoreKeyUser)
	if err != nil {
		s.log.Error().Err(err).Msg("session hydrate: reading user")
		return
	}
	if token == "" || blob == "" {
		return
	}

	var user domain.User
	if err := json.Unmarshal([]byte(blob), &user); err != nil {
		s.log.Error().Err(err).Msg("session hydrate: corrupt user blob, resetting")
		if derr := s.store.Delete(ctx, ports.StoreKeyToken, ports.StoreKeyUser); derr != nil {
			s.log.Warn().Err(derr).Msg("session hydrate: clearing corrupt entries")
		}
		return
	}

	s.session.Token = token
	s.session.User = &user
	s.bearer.SetToken(token)
}

// Login authenticates against the auth service. On failure the session is
// untouched and Message carries the response "detail" field when present.
func (s *SessionService) Login(ctx context.Context, email, password string) ports.SessionResult {
	payload, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("login failed")
		return ports.SessionResult{Message: detailMessage(err, genericLoginMsg)}
	}

	s.applyAuth(ctx, payload)
	s.log.Info().Str("email", email).Msg("logged in")
	return ports.SessionResult{OK: true}
}

// Signup registers a new account. Extra profile fields are merged after the
// base fields, so a colliding key wins over name/email/password. That
// precedence matches the deployed behavior and is pinned by tests; do not
// reorder the merge.
func (s *SessionService) Signup(ctx context.Context, name, email, password string, extra map[string]any) ports.SessionResult {
	payload := map[string]any{
		"name":     name,
		"email":    email,
		"password": password,
	}
	for k, v := range extra {
		payload[k] = v
	}

	auth, err := s.api.Signup(ctx, payload)
	if err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("signup failed")
		return ports.SessionResult{Message: errorDetailMessage(err, genericSignupMsg)}
	}

	s.applyAuth(ctx, auth)
	s.log.Info().Str("email", email).Msg("signed up")
	return ports.SessionResult{OK: true}
}

// Logout clears the live session, the bearer token, and every persisted key.
// It is synchronous, makes no network call, and is idempotent.
func (s *SessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	s.session.Token = ""
	s.session.User = nil
	s.mu.Unlock()

	s.bearer.ClearToken()
	if err := s.store.Delete(ctx, ports.StoreKeyToken, ports.StoreKeyUser, ports.StoreKeyAdminSession); err != nil {
		s.log.Warn().Err(err).Msg("logout: clearing persisted session")
	}
}

// UpdateProfile sends the given fields plus the current user id to the auth
// service and, on success, replaces the live and persisted user with the
// server's returned object wholesale. No local merge.
func (s *SessionService) UpdateProfile(ctx context.Context, fields map[string]any) ports.SessionResult {
	s.mu.Lock()
	current := s.session.User
	s.mu.Unlock()
	if current == nil {
		return ports.SessionResult{Message: genericProfileMsg}
	}

	payload := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		payload[k] = v
	}
	payload["user_id"] = current.ID

	user, err := s.api.UpdateProfile(ctx, payload)
	if err != nil {
		s.log.Warn().Err(err).Msg("profile update failed")
		return ports.SessionResult{Message: errorDetailMessage(err, genericProfileMsg)}
	}

	s.mu.Lock()
	s.session.User = user
	s.mu.Unlock()
	s.persistUser(ctx, user)
	return ports.SessionResult{OK: true}
}

// Session returns a copy of the current session state.
func (s *SessionService) Session() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// Token implements ports.TokenSource for collaborators that only gate on
// session presence.
func (s *SessionService) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Token
}

// TokenExpiry peeks at the token's exp claim without verifying the signature.
// Display-only: the token stays opaque for every authentication decision.
// The zero time means no token or no readable expiry.
func (s *SessionService) TokenExpiry() time.Time {
	token := s.Token()
	if token == "" {
		return time.Time{}
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// applyAuth installs a successful login/signup payload: live state, persisted
// entries, and the bearer token, in that order.
func (s *SessionService) applyAuth(ctx context.Context, payload *ports.AuthPayload) {
	s.mu.Lock()
	s.session.Token = payload.Token
	s.session.User = payload.User
	s.mu.Unlock()

	s.bearer.SetToken(payload.Token)

	if err := s.store.Set(ctx, ports.StoreKeyToken, payload.Token); err != nil {
		s.log.Warn().Err(err).Msg("persisting token")
	}
	s.persistUser(ctx, payload.User)
}

func (s *SessionService) persistUser(ctx context.Context, user *domain.User) {
	blob, err := json.Marshal(user)
	if err != nil {
		s.log.Warn().Err(err).Msg("serializing user")
		return
	}
	if err := s.store.Set(ctx, ports.StoreKeyUser, string(blob)); err != nil {
		s.log.Warn().Err(err).Msg("persisting user")
	}
}

// detailMessage extracts a user-facing message from a failed auth call using
// the login precedence: detail, then the generic fallback. The "error" field
// is deliberately ignored here.
func detailMessage(err error, generic string) string {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return generic
}

// errorDetailMessage uses the signup/profile precedence: error, then detail,
// then the generic fallback. Distinct from detailMessage on purpose.
func errorDetailMessage(err error, generic string) string {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code != "" {
			return apiErr.Code
		}
		if apiErr.Detail != "" {
			return apiErr.Detail
		}
	}
	return generic
}
