package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub001/internal/core/domain"
	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub001/internal/core/ports"
)

// --- Shared test doubles ---

type memStore struct {
	data map[string]string
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]string)}
}

func (s *memStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *memStore) Set(_ context.Context, key, value string) error {
	s.data[key] = value
	return nil
}

func (s *memStore) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(s.data, k)
	}
	return nil
}

type tokenSink struct {
	token string
}

func (t *tokenSink) SetToken(token string) { t.token = token }
func (t *tokenSink) ClearToken()           { t.token = "" }
func (t *tokenSink) Token() string         { return t.token }

type stubAuthAPI struct {
	loginFn   func(email, password string) (*ports.AuthPayload, error)
	signupFn  func(payload map[string]any) (*ports.AuthPayload, error)
	profileFn func(payload map[string]any) (*domain.User, error)
}

func (s *stubAuthAPI) Login(_ context.Context, email, password string) (*ports.AuthPayload, error) {
	return s.loginFn(email, password)
}

func (s *stubAuthAPI) Signup(_ context.Context, payload map[string]any) (*ports.AuthPayload, error) {
	return s.signupFn(payload)
}

func (s *stubAuthAPI) UpdateProfile(_ context.Context, payload map[string]any) (*domain.User, error) {
	return s.profileFn(payload)
}

func okPayload() *ports.AuthPayload {
	return &ports.AuthPayload{
		Token: "tok-1",
		User:  &domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com"},
	}
}

func newTestSession(api ports.AuthAPI, store ports.SessionStore, sink ports.TokenSink) *SessionService {
	return NewSessionService(api, store, sink, zerolog.Nop())
}

// --- Hydration ---

func TestSessionService_Hydrate_RestoresSession(t *testing.T) {
	store := newMemStore()
	store.data[ports.StoreKeyToken] = "tok-9"
	store.data[ports.StoreKeyUser] = `{"id":"u9","name":"Bob","email":"bob@example.com"}`
	sink := &tokenSink{}

	svc := newTestSession(&stubAuthAPI{}, store, sink)
	if !svc.Session().Loading {
		t.Fatal("session must start in loading state")
	}
	svc.Hydrate(context.Background())

	sess := svc.Session()
	if sess.Loading {
		t.Fatal("loading flag must clear after hydrate")
	}
	if !sess.IsAuthenticated() || sess.Token != "tok-9" {
		t.Fatalf("expected authenticated session, got %+v", sess)
	}
	if sess.User == nil || sess.User.ID != "u9" {
		t.Fatalf("unexpected user: %+v", sess.User)
	}
	if sink.token != "tok-9" {
		t.Fatalf("bearer holder not synced, got %q", sink.token)
	}
}

func TestSessionService_Hydrate_CorruptUserResets(t *testing.T) {
	store := newMemStore()
	store.data[ports.StoreKeyToken] = "tok-9"
	store.data[ports.StoreKeyUser] = `{not json`
	sink := &tokenSink{}

	svc := newTestSession(&stubAuthAPI{}, store, sink)
	svc.Hydrate(context.Background())

	sess := svc.Session()
	if sess.IsAuthenticated() {
		t.Fatal("corrupt user blob must leave session unauthenticated")
	}
	if sess.Loading {
		t.Fatal("loading flag must clear even on corrupt data")
	}
	if _, ok := store.data[ports.StoreKeyToken]; ok {
		t.Fatal("token key must be cleared")
	}
	if _, ok := store.data[ports.StoreKeyUser]; ok {
		t.Fatal("user key must be cleared")
	}
	if sink.token != "" {
		t.Fatal("bearer holder must stay empty")
	}
}

func TestSessionService_Hydrate_EmptyStore(t *testing.T) {
	svc := newTestSession(&stubAuthAPI{}, newMemStore(), &tokenSink{})
	svc.Hydrate(context.Background())

	sess := svc.Session()
	if sess.Loading || sess.IsAuthenticated() {
		t.Fatalf("expected idle unauthenticated session, got %+v", sess)
	}
}

// --- Login ---

func TestSessionService_Login_Success(t *testing.T) {
	store := newMemStore()
	sink := &tokenSink{}
	api := &stubAuthAPI{loginFn: func(email, password string) (*ports.AuthPayload, error) {
		return okPayload(), nil
	}}

	svc := newTestSession(api, store, sink)
	res := svc.Login(context.Background(), "alice@example.com", "pw")
	if !res.OK {
		t.Fatalf("expected success, got %+v", res)
	}

	sess := svc.Session()
	if sess.Token != "tok-1" || sess.User == nil || sess.User.Email != "alice@example.com" {
		t.Fatalf("unexpected session: %+v", sess)
	}
	if sink.token != "tok-1" {
		t.Fatalf("bearer holder not updated: %q", sink.token)
	}
	if store.data[ports.StoreKeyToken] != "tok-1" {
		t.Fatalf("token not persisted: %q", store.data[ports.StoreKeyToken])
	}
	var stored domain.User
	if err := json.Unmarshal([]byte(store.data[ports.StoreKeyUser]), &stored); err != nil || stored.ID != "u1" {
		t.Fatalf("persisted user wrong: %q err=%v", store.data[ports.StoreKeyUser], err)
	}
}

func TestSessionService_Login_FailureUsesDetailOnly(t *testing.T) {
	api := &stubAuthAPI{loginFn: func(string, string) (*ports.AuthPayload, error) {
		return nil, &domain.APIError{Status: 401, Code: "Auth error", Detail: "Invalid email or password"}
	}}
	svc := newTestSession(api, newMemStore(), &tokenSink{})

	res := svc.Login(context.Background(), "a@b.c", "bad")
	if res.OK {
		t.Fatal("expected failure")
	}
	// Login reads detail; the error field is ignored even when set.
	if res.Message != "Invalid email or password" {
		t.Fatalf("unexpected message: %q", res.Message)
	}

	api.loginFn = func(string, string) (*ports.AuthPayload, error) {
		return nil, &domain.APIError{Status: 401, Code: "Auth error"}
	}
	if res := svc.Login(context.Background(), "a@b.c", "bad"); res.Message != genericLoginMsg {
		t.Fatalf("error field must not feed login messages, got %q", res.Message)
	}

	if svc.Session().IsAuthenticated() {
		t.Fatal("failed login must not touch session state")
	}
}

func TestSessionService_Login_TransportFailure(t *testing.T) {
	api := &stubAuthAPI{loginFn: func(string, string) (*ports.AuthPayload, error) {
		return nil, errors.New("connection refused")
	}}
	svc := newTestSession(api, newMemStore(), &tokenSink{})

	if res := svc.Login(context.Background(), "a@b.c", "pw"); res.Message != genericLoginMsg {
		t.Fatalf("expected generic message, got %q", res.Message)
	}
}

// --- Signup ---

func TestSessionService_Signup_MessagePrecedence(t *testing.T) {
	var apiErr error
	api := &stubAuthAPI{signupFn: func(map[string]any) (*ports.AuthPayload, error) {
		return nil, apiErr
	}}
	svc := newTestSession(api, newMemStore(), &tokenSink{})

	// Both fields set: "error" wins for signup, unlike login.
	apiErr = &domain.APIError{Status: 409, Code: "User already exists", Detail: "An account with this email already exists."}
	if res := svc.Signup(context.Background(), "n", "e", "p", nil); res.Message != "User already exists" {
		t.Fatalf("expected error-field precedence, got %q", res.Message)
	}

	apiErr = &domain.APIError{Status: 400, Detail: "password too short"}
	if res := svc.Signup(context.Background(), "n", "e", "p", nil); res.Message != "password too short" {
		t.Fatalf("expected detail fallback, got %q", res.Message)
	}

	apiErr = errors.New("boom")
	if res := svc.Signup(context.Background(), "n", "e", "p", nil); res.Message != genericSignupMsg {
		t.Fatalf("expected generic fallback, got %q", res.Message)
	}
}

func TestSessionService_Signup_ExtraFieldPrecedence(t *testing.T) {
	var captured map[string]any
	api := &stubAuthAPI{signupFn: func(payload map[string]any) (*ports.AuthPayload, error) {
		captured = payload
		return okPayload(), nil
	}}
	svc := newTestSession(api, newMemStore(), &tokenSink{})

	extra := map[string]any{"email": "override@example.com", "currentRole": "student"}
	res := svc.Signup(context.Background(), "Alice", "alice@example.com", "pw", extra)
	if !res.OK {
		t.Fatalf("signup failed: %+v", res)
	}

	// Extra fields merge after the base payload; a colliding key silently
	// wins. Observed production behavior, kept on purpose.
	if captured["email"] != "override@example.com" {
		t.Fatalf("extra field must override base field, got %v", captured["email"])
	}
	if captured["name"] != "Alice" || captured["password"] != "pw" {
		t.Fatalf("base fields missing: %v", captured)
	}
	if captured["currentRole"] != "student" {
		t.Fatalf("extra field dropped: %v", captured)
	}
}

// --- Logout ---

func TestSessionService_Logout_Idempotent(t *testing.T) {
	store := newMemStore()
	store.data[ports.StoreKeyAdminSession] = `{"legacy":true}`
	sink := &tokenSink{}
	api := &stubAuthAPI{loginFn: func(string, string) (*ports.AuthPayload, error) {
		return okPayload(), nil
	}}
	svc := newTestSession(api, store, sink)

	svc.Login(context.Background(), "alice@example.com", "pw")
	svc.Logout(context.Background())

	if svc.Session().IsAuthenticated() || sink.token != "" {
		t.Fatal("logout must clear session and bearer holder")
	}
	for _, key := range []string{ports.StoreKeyToken, ports.StoreKeyUser, ports.StoreKeyAdminSession} {
		if _, ok := store.data[key]; ok {
			t.Fatalf("key %q must be cleared on logout", key)
		}
	}

	// Second logout on an already-empty session is a no-op, not an error.
	svc.Logout(context.Background())
	if svc.Session().IsAuthenticated() {
		t.Fatal("repeated logout must stay unauthenticated")
	}
}

// --- Profile update ---

func TestSessionService_UpdateProfile_ReplacesUserWholesale(t *testing.T) {
	store := newMemStore()
	var captured map[string]any
	api := &stubAuthAPI{
		loginFn: func(string, string) (*ports.AuthPayload, error) { return okPayload(), nil },
		profileFn: func(payload map[string]any) (*domain.User, error) {
			captured = payload
			return &domain.User{
				ID: "u1", Name: "Alice Smith", Email: "alice@example.com",
				Profile: map[string]any{"targetRole": "Backend Engineer"},
			}, nil
		},
	}
	svc := newTestSession(api, store, &tokenSink{})
	svc.Login(context.Background(), "alice@example.com", "pw")

	res := svc.UpdateProfile(context.Background(), map[string]any{"name": "Alice Smith"})
	if !res.OK {
		t.Fatalf("update failed: %+v", res)
	}
	if captured["user_id"] != "u1" {
		t.Fatalf("payload must carry user_id, got %v", captured)
	}

	user := svc.Session().User
	if user.Name != "Alice Smith" || user.Profile["targetRole"] != "Backend Engineer" {
		t.Fatalf("live user must be the server's object: %+v", user)
	}
	var stored domain.User
	if err := json.Unmarshal([]byte(store.data[ports.StoreKeyUser]), &stored); err != nil || stored.Name != "Alice Smith" {
		t.Fatalf("persisted user must be replaced: %q", store.data[ports.StoreKeyUser])
	}
}

func TestSessionService_UpdateProfile_FailurePrecedence(t *testing.T) {
	api := &stubAuthAPI{
		loginFn: func(string, string) (*ports.AuthPayload, error) { return okPayload(), nil },
		profileFn: func(map[string]any) (*domain.User, error) {
			return nil, &domain.APIError{Status: 400, Code: "Bad field", Detail: "name must not be empty"}
		},
	}
	svc := newTestSession(api, newMemStore(), &tokenSink{})
	svc.Login(context.Background(), "alice@example.com", "pw")

	if res := svc.UpdateProfile(context.Background(), map[string]any{"name": ""}); res.Message != "Bad field" {
		t.Fatalf("expected error-field precedence, got %q", res.Message)
	}
}

func TestSessionService_UpdateProfile_WithoutSession(t *testing.T) {
	svc := newTestSession(&stubAuthAPI{}, newMemStore(), &tokenSink{})
	if res := svc.UpdateProfile(context.Background(), map[string]any{"name": "x"}); res.OK {
		t.Fatal("profile update without a user must fail")
	}
}
