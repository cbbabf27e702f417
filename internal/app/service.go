// Package app provides the relay service that implements the dependencies
// required by the HTTP API.
package app

import (
	"context"
	"encoding/json"

	"github.com/okian/podium/internal/adapters/broker"
	"github.com/okian/podium/internal/adapters/repository"
	"github.com/okian/podium/internal/domain/event"
	"github.com/okian/podium/pkg/logger"
)

// Service routes inbound events to the broker and the evaluation store.
type Service struct {
	store       repository.Store
	broadcaster broker.Broadcaster
	authorizer  broker.Authorizer
	log         logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets the logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates the relay service over the given store and broker.
func New(store repository.Store, bus broker.Broadcaster, auth broker.Authorizer, opts ...Option) *Service {
	s := &Service{
		store:       store,
		broadcaster: bus,
		authorizer:  auth,
		log:         noopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Relay broadcasts a lifecycle event verbatim. No persistence happens.
func (s *Service) Relay(ctx context.Context, kind event.Kind, payload json.RawMessage) error {
	if err := s.broadcaster.Publish(ctx, kind.String(), payload); err != nil {
		s.log.Error(ctx, "broadcast failed", logger.String("event", kind.String()), logger.Error(err))
		return err
	}
	return nil
}

// SubmitEvaluation persists a submission, rebroadcasts it with the stored
// record's id, then broadcasts the team's aggregate. A record that was already
// persisted stays persisted when a later broadcast fails; no compensating
// action exists.
func (s *Service) SubmitEvaluation(ctx context.Context, payload json.RawMessage) (string, error) {
	sub, err := event.DecodeSubmission(payload)
	if err != nil {
		return "", err
	}

	id, err := s.store.Create(ctx, repository.Evaluation{
		TeamName:     sub.Team,
		EvaluatorUSN: sub.Evaluator,
		Ratings:      sub.Evaluation.Ratings,
		Feedback:     sub.Evaluation.Feedback,
	})
	if err != nil {
		s.log.Error(ctx, "persist evaluation failed", logger.String("team", sub.Team), logger.Error(err))
		return "", err
	}

	merged := map[string]any{}
	if len(payload) > 0 {
		// The payload decoded once already; a second decode into a generic
		// map cannot fail, but a JSON null leaves the map nil.
		_ = json.Unmarshal(payload, &merged)
	}
	if merged == nil {
		merged = map[string]any{}
	}
	merged["id"] = id

	if err := s.broadcaster.Publish(ctx, event.EvaluationSubmitted.String(), merged); err != nil {
		s.log.Error(ctx, "broadcast failed", logger.String("event", event.EvaluationSubmitted.String()), logger.Error(err))
		return id, err
	}

	evals, err := s.store.FindByTeam(ctx, sub.Team)
	if err != nil {
		s.log.Error(ctx, "load team evaluations failed", logger.String("team", sub.Team), logger.Error(err))
		return id, err
	}

	aggregate := map[string]any{
		"team":        sub.Team,
		"evaluations": evals,
	}
	if err := s.broadcaster.Publish(ctx, event.TeamEvaluations.String(), aggregate); err != nil {
		s.log.Error(ctx, "broadcast failed", logger.String("event", event.TeamEvaluations.String()), logger.Error(err))
		return id, err
	}
	return id, nil
}

// Feedbacks returns all evaluations grouped by team name, preserving
// insertion order within each team.
func (s *Service) Feedbacks(ctx context.Context) (map[string][]repository.Evaluation, error) {
	all, err := s.store.FindAll(ctx)
	if err != nil {
		s.log.Error(ctx, "load evaluations failed", logger.Error(err))
		return nil, err
	}

	grouped := make(map[string][]repository.Evaluation, len(all))
	for _, ev := range all {
		grouped[ev.TeamName] = append(grouped[ev.TeamName], ev)
	}
	return grouped, nil
}

// Authorize signs a channel subscription request via the broker.
func (s *Service) Authorize(body []byte) ([]byte, error) {
	return s.authorizer.Authorize(body)
}

// noopLogger keeps the service usable before a logger is wired.
type noopLogger struct{}

func (noopLogger) Debug(context.Context, string, ...logger.Field) {}
func (noopLogger) Info(context.Context, string, ...logger.Field)  {}
func (noopLogger) Warn(context.Context, string, ...logger.Field)  {}
func (noopLogger) Error(context.Context, string, ...logger.Field) {}
func (n noopLogger) Named(string) logger.Logger                   { return n }
