// Package sync reconciles the local localization key set against the remote
// term list.
//
// # Reconciliation
//
// Diff computes the symmetric difference between the local and remote key
// sets: insertions (local only) and removals (remote only). The two sets are
// disjoint by construction and the computation is pure.
//
// # Orchestration
//
// The Orchestrator runs a linear pipeline: extract local keys, fetch remote
// terms, diff, delete removals (when enabled), add insertions. Both mutation
// phases are always attempted; the run reports the worst phase outcome.
//
// # Verification
//
// A mutation phase succeeds only when the server-reported effect count equals
// the requested count. Anything less, including zero, downgrades the phase to
// a partial failure; both counts are preserved in the report so the two cases
// stay distinguishable. Partial failure surfaces as ErrPartialSync, distinct
// from hard transport or remote errors.
package sync
