// Package adminapi is the HTTP client for the external admin role service.
package adminapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub001/internal/core/domain"
	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub001/internal/core/ports"
	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub001/internal/infrastructure/httpx"
	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub001/internal/pkg/metrics"
)

const defaultTimeout = 15 * time.Second

const rolesPath = "/api/admin/roles"

type Client struct {
	http    *http.Client
	baseURL string
	log     zerolog.Logger
}

func NewClient(baseURL string, tokens *httpx.TokenHolder, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{
			Timeout:   timeout,
			Transport: httpx.NewTransport("admin", tokens, nil),
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log,
	}
}

// ListRoles fetches the full catalog. A null or empty body decodes to a nil
// slice; the console treats that as an empty catalog.
func (c *Client) ListRoles(ctx context.Context) ([]domain.Role, error) {
	var roles []domain.Role
	if err := httpx.DoJSON(ctx, c.http, http.MethodGet, c.baseURL+rolesPath, nil, &roles); err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return roles, nil
}

func (c *Client) CreateRole(ctx context.Context, payload ports.RolePayload) (*domain.Role, error) {
	var role domain.Role
	err := httpx.DoJSON(ctx, c.http, http.MethodPost, c.baseURL+rolesPath, payload, &role)
	c.countMutation("create", err)
	if err != nil {
		return nil, fmt.Errorf("create role: %w", err)
	}
	return &role, nil
}

func (c *Client) UpdateRole(ctx context.Context, roleID string, payload ports.RolePayload) (*domain.Role, error) {
	var role domain.Role
	err := httpx.DoJSON(ctx, c.http, http.MethodPut, c.roleURL(roleID), payload, &role)
	c.countMutation("update", err)
	if err != nil {
		return nil, fmt.Errorf("update role %s: %w", roleID, err)
	}
	return &role, nil
}

func (c *Client) ToggleRole(ctx context.Context, roleID string) (bool, error) {
	var out struct {
		Success  bool `json:"success"`
		IsActive bool `json:"isActive"`
	}
	err := httpx.DoJSON(ctx, c.http, http.MethodPatch, c.roleURL(roleID)+"/toggle", nil, &out)
	c.countMutation("toggle", err)
	if err != nil {
		return false, fmt.Errorf("toggle role %s: %w", roleID, err)
	}
	return out.IsActive, nil
}

func (c *Client) DeleteRole(ctx context.Context, roleID string) error {
	err := httpx.DoJSON(ctx, c.http, http.MethodDelete, c.roleURL(roleID), nil, nil)
	c.countMutation("delete", err)
	if err != nil {
		return fmt.Errorf("delete role %s: %w", roleID, err)
	}
	return nil
}

func (c *Client) roleURL(roleID string) string {
	return c.baseURL + rolesPath + "/" + url.PathEscape(roleID)
}

func (c *Client) countMutation(action string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.RoleMutationsTotal.WithLabelValues(action, result).Inc()
}
