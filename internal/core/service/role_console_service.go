package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub001/internal/core/domain"
	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub001/internal/core/ports"
)

const (
	genericToggleMsg = "Failed to update role status."
	genericDeleteMsg = "Failed to delete role."
	genericCreateMsg = "Failed to create role."
	genericUpdateMsg = "Failed to update role."
)

// RoleConsoleService mirrors the admin service's role catalog and applies
// each mutation's server response to the mirror in place, so the displayed
// collection tracks server-side defaults (assigned ids, timestamps,
// normalized salaries) without a full refetch.
//
// Mutations are independent and uncoordinated: two in-flight edits of the
// same role resolve in response-arrival order, last writer wins. The mutex
// protects the slice, not any ordering.
type RoleConsoleService struct {
	api     ports.RoleAPI
	session ports.TokenSource
	confirm ports.Confirmer
	notify  ports.Notifier
	log     zerolog.Logger

	mu    sync.Mutex
	roles []domain.Role
}

var _ ports.RoleConsole = (*RoleConsoleService)(nil)

func NewRoleConsoleService(
	api ports.RoleAPI,
	session ports.TokenSource,
	confirm ports.Confirmer,
	notify ports.Notifier,
	log zerolog.Logger,
) *RoleConsoleService {
	return &RoleConsoleService{
		api:     api,
		session: session,
		confirm: confirm,
		notify:  notify,
		log:     log,
	}
}

// FetchRoles refreshes the whole collection. An empty or absent server
// response is an empty catalog, not an error; a failed request logs, leaves
// an empty cache, and reports Loaded=false instead of propagating.
func (s *RoleConsoleService) FetchRoles(ctx context.Context) ports.FetchResult {
	if s.session.Token() == "" {
		s.log.Warn().Err(domain.ErrNotAuthenticated).Msg("fetch roles skipped")
		return ports.FetchResult{}
	}

	roles, err := s.api.ListRoles(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("fetch roles failed")
		s.setRoles(nil)
		return ports.FetchResult{}
	}
	if roles == nil {
		roles = []domain.Role{}
	}
	s.setRoles(roles)
	return ports.FetchResult{Loaded: true, Count: len(roles)}
}

// ToggleRoleStatus flips one role's active flag server-side. Only the
// matching record's IsActive is patched, with the value the server reports;
// nothing is flipped optimistically.
func (s *RoleConsoleService) ToggleRoleStatus(ctx context.Context, roleID string) ports.ConsoleResult {
	isActive, err := s.api.ToggleRole(ctx, roleID)
	if err != nil {
		s.log.Warn().Err(err).Str("role_id", roleID).Msg("toggle failed")
		msg := consoleMessage(err, genericToggleMsg)
		s.notify.Error(msg)
		return ports.ConsoleResult{Message: msg}
	}

	s.mu.Lock()
	for i := range s.roles {
		if s.roles[i].RoleID == roleID {
			s.roles[i].IsActive = isActive
			break
		}
	}
	s.mu.Unlock()
	return ports.ConsoleResult{OK: true}
}

// DeleteRole asks the operator first. A declined confirmation issues no
// request and leaves the collection unchanged.
func (s *RoleConsoleService) DeleteRole(ctx context.Context, roleID, title string) ports.ConsoleResult {
	if !s.confirm.Confirm(fmt.Sprintf("Delete role %q? This cannot be undone.", title)) {
		return ports.ConsoleResult{Cancelled: true}
	}

	if err := s.api.DeleteRole(ctx, roleID); err != nil {
		s.log.Warn().Err(err).Str("role_id", roleID).Msg("delete failed")
		msg := consoleMessage(err, genericDeleteMsg)
		s.notify.Error(msg)
		return ports.ConsoleResult{Message: msg}
	}

	s.mu.Lock()
	for i := range s.roles {
		if s.roles[i].RoleID == roleID {
			s.roles = append(s.roles[:i], s.roles[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.notify.Info("Role deleted successfully.")
	return ports.ConsoleResult{OK: true}
}

// AddRole sanitizes the form, forces the new role active, and appends the
// record the server returns — not the locally built payload.
func (s *RoleConsoleService) AddRole(ctx context.Context, form ports.RoleForm) ports.ConsoleResult {
	payload, err := BuildRolePayload(form)
	if err != nil {
		s.notify.Error(err.Error())
		return ports.ConsoleResult{Message: err.Error()}
	}
	active := true
	payload.IsActive = &active

	created, err := s.api.CreateRole(ctx, payload)
	if err != nil {
		s.log.Warn().Err(err).Msg("create role failed")
		msg := consoleMessage(err, genericCreateMsg)
		s.notify.Error(msg)
		return ports.ConsoleResult{Message: msg}
	}

	s.mu.Lock()
	s.roles = append(s.roles, *created)
	s.mu.Unlock()

	s.notify.Info("Role created.")
	return ports.ConsoleResult{OK: true}
}

// UpdateRole sanitizes the form and replaces the cached record matching
// roleID with the server's returned record.
func (s *RoleConsoleService) UpdateRole(ctx context.Context, roleID string, form ports.RoleForm) ports.ConsoleResult {
	payload, err := BuildRolePayload(form)
	if err != nil {
		s.notify.Error(err.Error())
		return ports.ConsoleResult{Message: err.Error()}
	}

	updated, err := s.api.UpdateRole(ctx, roleID, payload)
	if err != nil {
		s.log.Warn().Err(err).Str("role_id", roleID).Msg("update role failed")
		msg := consoleMessage(err, genericUpdateMsg)
		s.notify.Error(msg)
		return ports.ConsoleResult{Message: msg}
	}

	s.mu.Lock()
	for i := range s.roles {
		if s.roles[i].RoleID == roleID {
			s.roles[i] = *updated
			break
		}
	}
	s.mu.Unlock()

	s.notify.Info("Role updated.")
	return ports.ConsoleResult{OK: true}
}

// Roles returns a copy of the cached collection in display order.
func (s *RoleConsoleService) Roles() []domain.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Role, len(s.roles))
	copy(out, s.roles)
	return out
}

func (s *RoleConsoleService) setRoles(roles []domain.Role) {
	s.mu.Lock()
	s.roles = roles
	s.mu.Unlock()
}

// consoleMessage extracts the server's detail field, falling back to a
// generic message. Console operations never use the "error" field.
func consoleMessage(err error, generic string) string {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return generic
}
