package ports

import (
	"context"

	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub001/internal/core/domain"
)

// Store keys used by the session layer. admin_session is a legacy key written
// by older console builds; it is still cleared on logout.
const (
	StoreKeyToken        = "token"
	StoreKeyUser         = "user"
	StoreKeyAdminSession = "admin_session"
)

// SessionStore is the persisted local key-value store the session survives
// restarts in (the browser-localStorage analog).
type SessionStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

// TokenSink receives the current bearer token so outbound HTTP carries it.
// The session layer keeps it in sync on every mutation.
type TokenSink interface {
	SetToken(token string)
	ClearToken()
}

// TokenSource exposes the current bearer token. Non-empty means a session is
// present; it says nothing about validity.
type TokenSource interface {
	Token() string
}

// AuthPayload is the success body of login and signup.
type AuthPayload struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// AuthAPI is the outbound contract with the auth service.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*AuthPayload, error)
	Signup(ctx context.Context, payload map[string]any) (*AuthPayload, error)
	UpdateProfile(ctx context.Context, payload map[string]any) (*domain.User, error)
}

// SessionResult is the uniform outcome of a session mutation. Callers branch
// on OK; Message is user-facing and only set on failure.
type SessionResult struct {
	OK      bool
	Message string
}

// SessionService owns the current session and its persistence.
type SessionService interface {
	Hydrate(ctx context.Context)
	Login(ctx context.Context, email, password string) SessionResult
	Signup(ctx context.Context, name, email, password string, extra map[string]any) SessionResult
	Logout(ctx context.Context)
	UpdateProfile(ctx context.Context, fields map[string]any) SessionResult
	Session() domain.Session
}
