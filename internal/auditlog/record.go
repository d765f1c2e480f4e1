package auditlog

import "time"

const (
	OutcomeMatched = "matched"
	OutcomeNoMatch = "no_match"
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Outcomes lists every outcome the audit writer records.
var Outcomes = []string{OutcomeMatched, OutcomeNoMatch, OutcomeSuccess, OutcomeError}

// AuditEntry represents a persisted audit event.
type AuditEntry struct {
	ID         int64     `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Command    string    `json:"command"`
	Args       string    `json:"args,omitempty"`
	Provider   string    `json:"provider,omitempty"`
	Handle     string    `json:"handle,omitempty"`
	ChannelID  string    `json:"channel_id,omitempty"`
	Outcome    string    `json:"outcome"`
	Detail     string    `json:"detail,omitempty"`
	DurationMs int64     `json:"duration_ms"`
}

// Filter narrows List results. Zero fields match everything.
type Filter struct {
	Command string
	Outcome string
	Limit   int
}

// PruneOptions selects entries for Prune. OlderThan must be positive.
type PruneOptions struct {
	OlderThan time.Duration

	// Outcome limits pruning to one outcome, e.g. error.
	Outcome string

	// DryRun counts matching entries without deleting them.
	DryRun bool
}
