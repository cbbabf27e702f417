// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/podium/internal/domain/event"
)

// UploadDependencies defines the interface for event dispatch.
type UploadDependencies interface {
	Relay(ctx context.Context, kind event.Kind, payload json.RawMessage) error
	SubmitEvaluation(ctx context.Context, payload json.RawMessage) (string, error)
}

// UploadHandler handles the event dispatch endpoint.
type UploadHandler struct {
	deps UploadDependencies
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(deps UploadDependencies) *UploadHandler {
	return &UploadHandler{deps: deps}
}

// HandleUpload handles POST /api/upload requests. Bulk participants/teams
// uploads are acknowledged with an item count and nothing else; everything
// else dispatches on the enumerated event set.
func (h *UploadHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	const op = "api.upload"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req event.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	if req.IsBulk() {
		n, err := req.BulkCount()
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		writeJSON(w, http.StatusOK, bulkAckResponse{Status: "ok", Count: n})
		return
	}

	kind, ok := event.ParseKind(req.Event)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_event", NewKind(op, ErrInvalidEvent))
		return
	}

	if kind == event.EvaluationSubmitted {
		id, err := h.deps.SubmitEvaluation(r.Context(), req.Data)
		switch {
		case errors.Is(err, event.ErrBadPayload):
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		case err != nil:
			// Full error is logged by the service; clients get a generic message.
			writeError(w, http.StatusInternalServerError, "internal_error", nil)
		default:
			writeJSON(w, http.StatusOK, ackResponse{Status: "ok", ID: id})
		}
		return
	}

	if err := h.deps.Relay(r.Context(), kind, req.Data); err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}
	writeJSON(w, http.StatusOK, ackResponse{Status: "ok"})
}
