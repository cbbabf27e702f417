package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/okian/podium/pkg/metrics"
)

const (
	defaultCollection     = "evaluations"
	defaultConnectTimeout = 10 * time.Second
)

// MongoStore is the document store implementation of Store. The connection is
// established lazily on first use and shared for the process lifetime.
type MongoStore struct {
	mu sync.Mutex

	uri            string
	database       string
	collection     string
	connectTimeout time.Duration

	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore creates a store for the given connection string and database.
// No connection is made until Ensure or a query runs.
func NewMongoStore(uri, database string, opts ...Option) *MongoStore {
	s := &MongoStore{
		uri:            uri,
		database:       database,
		collection:     defaultCollection,
		connectTimeout: defaultConnectTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ensure establishes the shared connection if it is not ready yet. The mutex
// keeps concurrent first requests from issuing two connect attempts.
func (s *MongoStore) Ensure(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.coll != nil {
		return nil
	}
	if s.uri == "" {
		return ErrNoURI
	}

	ctx, cancel := context.WithTimeout(ctx, s.connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.uri))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConnect, err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return fmt.Errorf("%w: %w", ErrConnect, err)
	}

	s.client = client
	s.coll = client.Database(s.database).Collection(s.collection)
	return nil
}

// Create inserts a new evaluation record and returns its hex id. SubmittedAt
// defaults to the current time when the caller leaves it zero.
func (s *MongoStore) Create(ctx context.Context, ev Evaluation) (string, error) {
	if err := s.Ensure(ctx); err != nil {
		metrics.RecordStoreError()
		return "", err
	}

	if ev.SubmittedAt.IsZero() {
		ev.SubmittedAt = time.Now().UTC()
	}

	res, err := s.coll.InsertOne(ctx, ev)
	if err != nil {
		metrics.RecordStoreError()
		return "", fmt.Errorf("insert evaluation: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	metrics.RecordEvaluationStored()
	return id.Hex(), nil
}

// FindByTeam returns all records for a team. Natural order preserves
// insertion order for this append-only collection.
func (s *MongoStore) FindByTeam(ctx context.Context, team string) ([]Evaluation, error) {
	return s.find(ctx, bson.M{"teamName": team})
}

// FindAll returns every evaluation record.
func (s *MongoStore) FindAll(ctx context.Context) ([]Evaluation, error) {
	return s.find(ctx, bson.M{})
}

func (s *MongoStore) find(ctx context.Context, filter bson.M) ([]Evaluation, error) {
	if err := s.Ensure(ctx); err != nil {
		metrics.RecordStoreError()
		return nil, err
	}

	cur, err := s.coll.Find(ctx, filter)
	if err != nil {
		metrics.RecordStoreError()
		return nil, fmt.Errorf("find evaluations: %w", err)
	}
	defer func() { _ = cur.Close(ctx) }()

	var out []Evaluation
	if err := cur.All(ctx, &out); err != nil {
		metrics.RecordStoreError()
		return nil, fmt.Errorf("decode evaluations: %w", err)
	}
	return out, nil
}

// Close releases the shared connection. Safe to call when never connected.
func (s *MongoStore) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		return nil
	}
	err := s.client.Disconnect(ctx)
	s.client = nil
	s.coll = nil
	if err != nil {
		return fmt.Errorf("disconnect: %w", err)
	}
	return nil
}
