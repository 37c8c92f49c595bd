package sync

import "locsync/core/termstore"

// Outcome classifies a phase or a whole run.
type Outcome string

const (
	// OutcomeSuccess means every requested mutation took effect.
	OutcomeSuccess Outcome = "success"
	// OutcomeSkipped means the phase made no remote call.
	OutcomeSkipped Outcome = "skipped"
	// OutcomePartial means the round-trip succeeded but the server-reported
	// effect count did not match the requested count.
	OutcomePartial Outcome = "partial_failure"
	// OutcomeFailed means the phase's remote call itself failed.
	OutcomeFailed Outcome = "failed"
)

// PhaseResult records the outcome of one mutation phase.
type PhaseResult struct {
	// Phase names the phase: "delete" or "add".
	Phase string `json:"phase"`

	// Outcome classifies the phase result.
	Outcome Outcome `json:"outcome"`

	// SkipReason explains a skipped phase.
	SkipReason string `json:"skip_reason,omitempty"`

	// Counts holds requested vs server-reported effect counts. Both sides
	// are preserved so callers can tell "nothing succeeded" apart from
	// "fewer than requested succeeded".
	Counts termstore.MutationCounts `json:"counts"`

	// Err holds the remote call failure for OutcomeFailed phases.
	Err error `json:"-"`
}

// RunReport is the full record of one reconciliation run.
type RunReport struct {
	// RunID uniquely identifies this run across logs and the report.
	RunID string `json:"run_id"`

	// LocalCount and RemoteCount are the key set sizes before mutation.
	LocalCount  int `json:"local_count"`
	RemoteCount int `json:"remote_count"`

	// Insertions and Removals are the reconciled difference, sorted
	// lexicographically for deterministic display.
	Insertions []string `json:"insertions"`
	Removals   []string `json:"removals"`

	// Delete and Add record the two mutation phases.
	Delete PhaseResult `json:"delete"`
	Add    PhaseResult `json:"add"`

	// Outcome is the worst phase outcome.
	Outcome Outcome `json:"outcome"`

	// ExecutionTime is the wall-clock duration of the run.
	ExecutionTime string `json:"execution_time"`
}
