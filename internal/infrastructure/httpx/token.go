// Package httpx carries the pieces shared by both backend API clients: the
// bearer token holder the session layer keeps in sync, and the instrumented
// transport that applies it to every outbound request.
package httpx

import "sync"

// TokenHolder is the single place the current bearer token lives. The session
// layer writes it on every session mutation; both API clients read it per
// request, so a request issued after logout goes out unauthenticated rather
// than with a stale credential.
type TokenHolder struct {
	mu    sync.RWMutex
	token string
}

func NewTokenHolder() *TokenHolder {
	return &TokenHolder{}
}

// SetToken installs the bearer token used on subsequent requests.
func (h *TokenHolder) SetToken(token string) {
	h.mu.Lock()
	h.token = token
	h.mu.Unlock()
}

// ClearToken removes the bearer token.
func (h *TokenHolder) ClearToken() {
	h.SetToken("")
}

// Token returns the current bearer token, empty when unauthenticated.
func (h *TokenHolder) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}
