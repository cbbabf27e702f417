// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/podium/internal/adapters/repository"
)

// FeedbacksDependencies defines the interface for evaluation reads.
type FeedbacksDependencies interface {
	Feedbacks(ctx context.Context) (map[string][]repository.Evaluation, error)
}

// FeedbacksHandler handles evaluation retrieval requests.
type FeedbacksHandler struct {
	deps FeedbacksDependencies
}

// NewFeedbacksHandler creates a new feedbacks handler.
func NewFeedbacksHandler(deps FeedbacksDependencies) *FeedbacksHandler {
	return &FeedbacksHandler{deps: deps}
}

// HandleFeedbacks handles GET /feedbacks requests, returning all evaluations
// grouped by team name.
func (h *FeedbacksHandler) HandleFeedbacks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	grouped, err := h.deps.Feedbacks(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}
	writeJSON(w, http.StatusOK, grouped)
}
