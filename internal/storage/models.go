package storage

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Interaction is one answered query: what the user asked, how it was routed,
// and what came back. Operational telemetry only — it never feeds back into
// query handling.
type Interaction struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	Message    string    `json:"message"`
	Intent     string    `json:"intent"`
	ResultKind string    `json:"result_kind"`
	Response   string    `json:"response"`
	DurationMs int64     `json:"duration_ms"`
}
