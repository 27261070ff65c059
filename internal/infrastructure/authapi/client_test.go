package authapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub001/internal/core/domain"
	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub001/internal/infrastructure/httpx"
)

func TestClient_Login_ParsesTokenAndUser(t *testing.T) {
	var gotPath, gotAuth, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")

		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "a@b.c" || body["password"] != "pw" {
			t.Errorf("unexpected body: %v", body)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"tok-1","user":{"id":"u1","name":"A","email":"a@b.c","currentRole":"student"}}`))
	}))
	defer srv.Close()

	tokens := httpx.NewTokenHolder()
	client := NewClient(srv.URL, tokens, 0, zerolog.Nop())

	payload, err := client.Login(context.Background(), "a@b.c", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if gotPath != "/auth/login" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotAuth != "" {
		t.Fatalf("login must go out unauthenticated, got %q", gotAuth)
	}
	if gotReqID == "" {
		t.Fatal("requests must carry a correlation id")
	}
	if payload.Token != "tok-1" || payload.User == nil || payload.User.Profile["currentRole"] != "student" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"user":{"id":"u1"}}`))
	}))
	defer srv.Close()

	tokens := httpx.NewTokenHolder()
	tokens.SetToken("tok-7")
	client := NewClient(srv.URL, tokens, 0, zerolog.Nop())

	if _, err := client.UpdateProfile(context.Background(), map[string]any{"user_id": "u1"}); err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if gotAuth != "Bearer tok-7" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestClient_ErrorBodyBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Auth error","detail":"Invalid email or password"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, httpx.NewTokenHolder(), 0, zerolog.Nop())
	_, err := client.Login(context.Background(), "a@b.c", "bad")
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T: %v", err, err)
	}
	if apiErr.Status != http.StatusUnauthorized || apiErr.Code != "Auth error" || apiErr.Detail != "Invalid email or password" {
		t.Fatalf("unexpected APIError: %+v", apiErr)
	}
}

func TestClient_UpdateProfile_MissingUserIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, httpx.NewTokenHolder(), 0, zerolog.Nop())
	if _, err := client.UpdateProfile(context.Background(), map[string]any{"user_id": "u1"}); err == nil {
		t.Fatal("expected error for response without user")
	}
}
