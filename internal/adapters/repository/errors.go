package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrNoURI   = errors.New("mongo uri not configured")
	ErrConnect = errors.New("document store connect failed")
)
