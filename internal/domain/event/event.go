// Package event defines the relay's event vocabulary and upload payload shapes.
package event

import (
	"encoding/json"
	"fmt"
)

// Kind identifies one of the enumerated relay events. The zero value is not a
// valid kind; inbound names must go through ParseKind.
type Kind string

const (
	PresentationStarting Kind = "presentationStarting"
	PresentationStarted  Kind = "presentationStarted"
	PresentationEnded    Kind = "presentationEnded"
	TimeSync             Kind = "timeSync"
	EvaluationForm       Kind = "evaluationForm"
	PresentationReset    Kind = "presentationReset"
	EvaluationSubmitted  Kind = "evaluationSubmitted"

	// TeamEvaluations is outbound only: published after a submission, never
	// accepted from clients.
	TeamEvaluations Kind = "teamEvaluations"
)

// inbound is the set of kinds clients may post to the relay.
var inbound = map[Kind]struct{}{
	PresentationStarting: {},
	PresentationStarted:  {},
	PresentationEnded:    {},
	TimeSync:             {},
	EvaluationForm:       {},
	PresentationReset:    {},
	EvaluationSubmitted:  {},
}

// ParseKind maps an event name from the wire to a Kind. It reports false for
// names outside the enumerated inbound set, including "teamEvaluations".
func ParseKind(name string) (Kind, bool) {
	k := Kind(name)
	_, ok := inbound[k]
	return k, ok
}

// IsRelay reports whether the kind is broadcast verbatim with no persistence.
func (k Kind) IsRelay() bool {
	_, ok := inbound[k]
	return ok && k != EvaluationSubmitted
}

// String returns the wire name of the kind.
func (k Kind) String() string { return string(k) }

// Bulk upload discriminators. Uploads carrying one of these are acknowledged
// with an item count and nothing else.
const (
	BulkParticipants = "participants"
	BulkTeams        = "teams"
)

// Request mirrors the POST /api/upload body. Data stays raw until a handler
// knows which shape to decode.
type Request struct {
	Event string          `json:"event"`
	Type  string          `json:"type,omitempty"`
	Data  json.RawMessage `json:"data"`
}

// IsBulk reports whether the request is a bulk participants/teams upload.
func (r Request) IsBulk() bool {
	return r.Type == BulkParticipants || r.Type == BulkTeams
}

// BulkCount returns the number of items in a bulk upload payload.
func (r Request) BulkCount() (int, error) {
	if len(r.Data) == 0 {
		return 0, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(r.Data, &items); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBadPayload, err)
	}
	return len(items), nil
}

// Submission carries the fields extracted from an evaluationSubmitted payload.
type Submission struct {
	Team       string     `json:"team"`
	Evaluator  string     `json:"evaluator"`
	Evaluation Evaluation `json:"evaluation"`
}

// Evaluation is the rating sheet attached to a submission. Ratings is a
// free-form mapping of category to numeric or text values.
type Evaluation struct {
	Ratings  map[string]any `json:"ratings"`
	Feedback string         `json:"feedback"`
}

// DecodeSubmission extracts the submission fields from a raw upload payload.
// Fields are caller-supplied and unvalidated.
func DecodeSubmission(data json.RawMessage) (Submission, error) {
	var s Submission
	if err := json.Unmarshal(data, &s); err != nil {
		return Submission{}, fmt.Errorf("%w: %w", ErrBadPayload, err)
	}
	return s, nil
}
