// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"io"
	"net/http"
)

// AuthDependencies defines the interface for channel authorization.
type AuthDependencies interface {
	Authorize(body []byte) ([]byte, error)
}

// AuthHandler handles channel subscription authorization.
type AuthHandler struct {
	deps AuthDependencies
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(deps AuthDependencies) *AuthHandler {
	return &AuthHandler{deps: deps}
}

// HandleAuth handles POST /api/pusher-auth requests. The raw body is passed
// to the broker's signing primitive and the signed token is returned verbatim.
// No entitlement check happens here; trust is delegated to the broker's
// signature scheme.
func (h *AuthHandler) HandleAuth(w http.ResponseWriter, r *http.Request) {
	const op = "api.pusher_auth"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	token, err := h.deps.Authorize(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = w.Write(token)
}
