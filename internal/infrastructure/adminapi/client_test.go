package adminapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub001/internal/core/domain"
	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub001/internal/core/ports"
	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub001/internal/infrastructure/httpx"
)

func newTestClient(url string) *Client {
	tokens := httpx.NewTokenHolder()
	tokens.SetToken("tok")
	return NewClient(url, tokens, 0, zerolog.Nop())
}

func TestClient_ListRoles_NullBodyIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/admin/roles" || r.Method != http.MethodGet {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`null`))
	}))
	defer srv.Close()

	roles, err := newTestClient(srv.URL).ListRoles(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(roles) != 0 {
		t.Fatalf("expected no roles, got %v", roles)
	}
}

func TestClient_ListRoles_DecodesCatalog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"roleId":"r1","title":"Data Analyst","isActive":true,"salaryRange":{"min":55000,"max":85000,"currency":"USD"}}]`))
	}))
	defer srv.Close()

	roles, err := newTestClient(srv.URL).ListRoles(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(roles) != 1 || roles[0].RoleID != "r1" || roles[0].SalaryRange.Max != 85000 {
		t.Fatalf("unexpected roles: %+v", roles)
	}
}

func TestClient_ToggleRole_ReturnsServerFlag(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/api/admin/roles/r1/toggle" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"success":true,"isActive":false}`))
	}))
	defer srv.Close()

	active, err := newTestClient(srv.URL).ToggleRole(context.Background(), "r1")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if active {
		t.Fatal("expected isActive=false from server")
	}
}

func TestClient_CreateRole_SendsPayloadVerbatim(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %s", r.Method)
		}
		_ = json.NewDecoder(r.Body).Decode(&captured)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"roleId":"r9","title":"ML Engineer","isActive":true}`))
	}))
	defer srv.Close()

	active := true
	payload := ports.RolePayload{Title: "ML Engineer", IsActive: &active, MustHaveSkills: []string{"Python"}}
	role, err := newTestClient(srv.URL).CreateRole(context.Background(), payload)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if role.RoleID != "r9" {
		t.Fatalf("unexpected role: %+v", role)
	}
	if captured["isActive"] != true || captured["title"] != "ML Engineer" {
		t.Fatalf("unexpected payload: %v", captured)
	}
}

func TestClient_DeleteRole_NotFoundDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Not found","detail":"Role not found"}`))
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).DeleteRole(context.Background(), "ghost")
	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) || apiErr.Detail != "Role not found" {
		t.Fatalf("expected APIError with detail, got %v", err)
	}
}
