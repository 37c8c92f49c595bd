package sync

import (
	"context"
	"errors"
	"time"

	"locsync/core/termstore"
	"locsync/feature/extract"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrPartialSync marks a run in which at least one mutation phase completed
// its round-trip but took effect for fewer terms than requested. It is
// recoverable: re-running the sync retries exactly the leftover difference.
var ErrPartialSync = errors.New("sync completed with partial failure")

// Orchestrator drives the end-to-end reconciliation: extract, fetch remote,
// diff, delete removals, add insertions. The store and logger are injected
// once at construction and shared by every phase.
type Orchestrator struct {
	store  termstore.Store
	logger *zap.Logger
}

// New creates an orchestrator.
func New(store termstore.Store, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{store: store, logger: logger}
}

// Run executes one reconciliation. Extraction or remote-list failures abort
// before any mutation. The delete and add phases are always both attempted;
// a failure in one does not block the other, and the report carries the
// worst phase outcome. The returned error is ErrPartialSync for count
// mismatches, or the first phase error for hard remote failures.
func (o *Orchestrator) Run(ctx context.Context, cfg Config) (*RunReport, error) {
	startTime := time.Now()
	runID := uuid.NewString()
	log := o.logger.With(zap.String("run_id", runID))

	// 1. Extract
	log.Info("Extracting local keys", zap.String("file", cfg.File), zap.String("enum", cfg.Enum))
	local, err := extract.LoadFile(cfg.File, extract.Options{Enum: cfg.Enum, Lowercase: cfg.Lowercase})
	if err != nil {
		return nil, err
	}
	log.Info("Extraction completed", zap.Int("keys", local.Len()))

	// 2. Fetch remote
	log.Info("Fetching remote terms", zap.String("language", cfg.Language))
	remote, err := o.store.ListTerms(ctx, cfg.Language)
	if err != nil {
		return nil, err
	}
	log.Info("Remote fetch completed", zap.Int("terms", remote.Len()))

	// 3. Reconcile
	diff := Diff(local, remote)
	log.Info("Reconciliation computed",
		zap.Int("insertions", diff.Insertions.Len()),
		zap.Int("removals", diff.Removals.Len()))

	report := &RunReport{
		RunID:       runID,
		LocalCount:  local.Len(),
		RemoteCount: remote.Len(),
		Insertions:  diff.Insertions.Sorted(),
		Removals:    diff.Removals.Sorted(),
	}

	// 4. Delete phase
	report.Delete = o.runPhase(ctx, log, "delete", diff.Removals, cfg.DeleteRemovals, o.store.DeleteTerms)

	// 5. Add phase
	report.Add = o.runPhase(ctx, log, "add", diff.Insertions, true, o.store.AddTerms)

	report.Outcome = worstOutcome(report.Delete, report.Add)
	report.ExecutionTime = time.Since(startTime).String()
	log.Info("Sync completed",
		zap.String("outcome", string(report.Outcome)),
		zap.String("total_time", report.ExecutionTime))

	switch report.Outcome {
	case OutcomeFailed:
		if report.Delete.Err != nil {
			return report, report.Delete.Err
		}
		return report, report.Add.Err
	case OutcomePartial:
		return report, ErrPartialSync
	}
	return report, nil
}

// runPhase executes one mutation phase against the store and verifies the
// server-reported effect count. The start/result log entries are
// observational only; control flow never depends on them.
func (o *Orchestrator) runPhase(
	ctx context.Context,
	log *zap.Logger,
	name string,
	keys termstore.KeySet,
	enabled bool,
	call func(context.Context, termstore.KeySet) (termstore.MutationCounts, error),
) PhaseResult {
	result := PhaseResult{Phase: name}

	if !enabled {
		result.Outcome = OutcomeSkipped
		result.SkipReason = "disabled by configuration"
		log.Info("Phase skipped", zap.String("phase", name), zap.String("reason", result.SkipReason))
		return result
	}
	if keys.Len() == 0 {
		result.Outcome = OutcomeSkipped
		result.SkipReason = "nothing to do"
		log.Info("Phase skipped", zap.String("phase", name), zap.String("reason", result.SkipReason))
		return result
	}

	log.Info("Phase started", zap.String("phase", name), zap.Int("requested", keys.Len()))

	counts, err := call(ctx, keys)
	if err != nil {
		result.Outcome = OutcomeFailed
		result.Err = err
		result.Counts.Requested = keys.Len()
		log.Error("Phase failed", zap.String("phase", name), zap.Error(err))
		return result
	}

	result.Counts = counts
	if counts.Succeeded == 0 || counts.Succeeded != counts.Requested {
		result.Outcome = OutcomePartial
	} else {
		result.Outcome = OutcomeSuccess
	}

	log.Info("Phase result",
		zap.String("phase", name),
		zap.String("outcome", string(result.Outcome)),
		zap.Int("requested", counts.Requested),
		zap.Int("parsed", counts.Parsed),
		zap.Int("succeeded", counts.Succeeded))
	return result
}

// worstOutcome folds phase outcomes into the run outcome. Skips never
// penalize the run.
func worstOutcome(phases ...PhaseResult) Outcome {
	outcome := OutcomeSuccess
	for _, p := range phases {
		switch p.Outcome {
		case OutcomeFailed:
			return OutcomeFailed
		case OutcomePartial:
			outcome = OutcomePartial
		}
	}
	return outcome
}
