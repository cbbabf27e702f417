package broker

import "errors"

// Sentinel kinds for broker errors.
var (
	ErrMissingCredentials = errors.New("missing pusher credentials")
	ErrNoChannel          = errors.New("missing broadcast channel")
)
