// Package authapi is the HTTP client for the external auth service.
package authapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub001/internal/core/domain"
	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub001/internal/core/ports"
	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub001/internal/infrastructure/httpx"
)

const defaultTimeout = 15 * time.Second

type Client struct {
	http    *http.Client
	baseURL string
	log     zerolog.Logger
}

// NewClient builds an auth service client. The bearer token on outbound
// requests always comes from tokens at send time.
func NewClient(baseURL string, tokens *httpx.TokenHolder, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{
			Timeout:   timeout,
			Transport: httpx.NewTransport("auth", tokens, nil),
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log,
	}
}

func (c *Client) Login(ctx context.Context, email, password string) (*ports.AuthPayload, error) {
	body := map[string]string{"email": email, "password": password}
	var payload ports.AuthPayload
	if err := httpx.DoJSON(ctx, c.http, http.MethodPost, c.baseURL+"/auth/login", body, &payload); err != nil {
		return nil, fmt.Errorf("auth login: %w", err)
	}
	return &payload, nil
}

func (c *Client) Signup(ctx context.Context, payload map[string]any) (*ports.AuthPayload, error) {
	var out ports.AuthPayload
	if err := httpx.DoJSON(ctx, c.http, http.MethodPost, c.baseURL+"/auth/signup", payload, &out); err != nil {
		return nil, fmt.Errorf("auth signup: %w", err)
	}
	return &out, nil
}

func (c *Client) UpdateProfile(ctx context.Context, payload map[string]any) (*domain.User, error) {
	var out struct {
		User *domain.User `json:"user"`
	}
	if err := httpx.DoJSON(ctx, c.http, http.MethodPut, c.baseURL+"/auth/profile", payload, &out); err != nil {
		return nil, fmt.Errorf("auth profile update: %w", err)
	}
	if out.User == nil {
		return nil, fmt.Errorf("auth profile update: response missing user")
	}
	return out.User, nil
}
