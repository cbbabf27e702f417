// Package repository defines the evaluation store interface and errors.
package repository

import "time"

// Option applies a configuration option to the MongoStore.
type Option func(*MongoStore)

// WithCollection overrides the collection holding evaluation records.
func WithCollection(name string) Option {
	return func(s *MongoStore) {
		if name != "" {
			s.collection = name
		}
	}
}

// WithConnectTimeout bounds the lazy connection attempt.
func WithConnectTimeout(d time.Duration) Option {
	return func(s *MongoStore) {
		if d > 0 {
			s.connectTimeout = d
		}
	}
}
