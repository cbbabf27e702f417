package event

import "errors"

// Sentinel kinds for payload errors.
var (
	ErrBadPayload = errors.New("malformed payload")
)
