package domain

import (
	"errors"
	"fmt"
)

// ErrNotAuthenticated reports an admin operation attempted without a session.
var ErrNotAuthenticated = errors.New("not authenticated")

// APIError is a structured error reported by one of the backend services.
// Both services use the same envelope, with an "error" and/or "detail" field;
// which field a caller prefers depends on the operation, so both are kept.
type APIError struct {
	Status int    // HTTP status code
	Code   string // body "error" field
	Detail string // body "detail" field
}

func (e *APIError) Error() string {
	switch {
	case e.Detail != "":
		return fmt.Sprintf("api error (status %d): %s", e.Status, e.Detail)
	case e.Code != "":
		return fmt.Sprintf("api error (status %d): %s", e.Status, e.Code)
	default:
		return fmt.Sprintf("api error (status %d)", e.Status)
	}
}
