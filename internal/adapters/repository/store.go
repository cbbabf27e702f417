// Package repository defines the evaluation store interface and errors.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Evaluation represents a persisted evaluation submission. Team name and
// evaluator identity are caller-supplied and unvalidated; records are created
// once and never updated or deleted by the relay.
type Evaluation struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TeamName     string             `bson:"teamName" json:"teamName"`
	EvaluatorUSN string             `bson:"evaluatorUSN" json:"evaluatorUSN"`
	Ratings      map[string]any     `bson:"ratings" json:"ratings"`
	Feedback     string             `bson:"feedback" json:"feedback"`
	SubmittedAt  time.Time          `bson:"submittedAt" json:"submittedAt"`
}

// Store provides access to evaluation records in the document store.
type Store interface {
	// Ensure establishes the shared connection if it is not ready yet.
	// It is idempotent and safe for concurrent use.
	Ensure(ctx context.Context) error

	// Create inserts a new evaluation record and returns its id.
	Create(ctx context.Context, ev Evaluation) (string, error)

	// FindByTeam returns all records for a team in insertion order.
	FindByTeam(ctx context.Context, team string) ([]Evaluation, error)

	// FindAll returns every record in insertion order.
	FindAll(ctx context.Context) ([]Evaluation, error)
}
