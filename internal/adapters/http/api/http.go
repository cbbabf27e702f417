// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/okian/podium/internal/adapters/repository"
	"github.com/okian/podium/internal/domain/event"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Relay broadcasts a lifecycle event verbatim.
	Relay(ctx context.Context, kind event.Kind, payload json.RawMessage) error

	// SubmitEvaluation persists a submission and rebroadcasts it, returning
	// the stored record's id.
	SubmitEvaluation(ctx context.Context, payload json.RawMessage) (string, error)

	// Feedbacks returns all evaluations grouped by team name.
	Feedbacks(ctx context.Context) (map[string][]repository.Evaluation, error)

	// Authorize signs a channel subscription request.
	Authorize(body []byte) ([]byte, error)
}

// Server wires HTTP routes for the relay API.
type Server struct {
	healthHandler    *HealthHandler
	uploadHandler    *UploadHandler
	authHandler      *AuthHandler
	feedbacksHandler *FeedbacksHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		uploadHandler:    NewUploadHandler(deps),
		authHandler:      NewAuthHandler(deps),
		feedbacksHandler: NewFeedbacksHandler(deps),
	}
}

// Register attaches all HTTP routes to mux. Specific paths first; the "/api/"
// subtree catches remaining API paths as a liveness placeholder.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/health", RequestIDMiddleware(MetricsMiddleware(s.healthHandler.HandleHealth)))
	mux.HandleFunc("/feedbacks", RequestIDMiddleware(MetricsMiddleware(s.feedbacksHandler.HandleFeedbacks)))
	mux.HandleFunc("/api/upload", RequestIDMiddleware(MetricsMiddleware(s.uploadHandler.HandleUpload)))
	mux.HandleFunc("/api/pusher-auth", RequestIDMiddleware(MetricsMiddleware(s.authHandler.HandleAuth)))
	mux.HandleFunc("/api/metrics", RequestIDMiddleware(s.healthHandler.HandleMetrics))
	mux.HandleFunc("/api/test", RequestIDMiddleware(MetricsMiddleware(s.healthHandler.HandlePing)))
	mux.HandleFunc("/api/", RequestIDMiddleware(MetricsMiddleware(s.healthHandler.HandlePing)))
}

type ackResponse struct {
	Status string `json:"status"`
	ID     string `json:"id,omitempty"`
}

type bulkAckResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// NewKind annotates a sentinel error with the operation that raised it.
func NewKind(op string, kind error) error {
	return fmt.Errorf("%s: %w", op, kind)
}

// WrapKind annotates a sentinel error and its underlying cause.
func WrapKind(op string, kind, err error) error {
	return fmt.Errorf("%s: %w: %w", op, kind, err)
}
