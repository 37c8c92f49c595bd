package cmd

import (
	"context"
	"fmt"

	"locsync/core/config"
	"locsync/core/logger"
	"locsync/core/termstore"
	syncFeature "locsync/feature/sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the sync command
	syncFile           string
	syncEnum           string
	syncLowercase      bool
	syncLanguage       string
	syncDeleteRemovals bool
)

// syncCmd reconciles local keys against the remote term list.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync local localization keys to the remote project",
	Long: `Extract keys from the local declaration file, diff them against the
remote term list, and apply the difference (add missing terms, optionally
delete removed ones).

Examples:
  # Add missing terms only
  locsync sync --file Sources/Localization.swift --enum L10n

  # Also delete remote terms no longer declared locally
  locsync sync --delete-removals`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVar(&syncFile, "file", "", "Path to the declaration file (overrides config)")
	syncCmd.Flags().StringVar(&syncEnum, "enum", "", "Enum name to scope extraction to (overrides config)")
	syncCmd.Flags().BoolVar(&syncLowercase, "lowercase", false, "Lowercase every extracted key")
	syncCmd.Flags().StringVar(&syncLanguage, "language", "", "Language code (overrides config)")
	syncCmd.Flags().BoolVar(&syncDeleteRemovals, "delete-removals", false, "Delete remote terms absent locally")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadResolvedConfig(cmd)
	if err != nil {
		return err
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	store, err := termstore.NewClient(cfg.API)
	if err != nil {
		return fmt.Errorf("failed to create api client: %w", err)
	}

	orchestrator := syncFeature.New(store, l)
	report, err := orchestrator.Run(ctx, cfg.Sync)
	if report != nil {
		printSyncReport(l, report)
	}
	return err
}

// loadResolvedConfig loads configuration, applies flag overrides, and
// validates the result before the core runs.
func loadResolvedConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Flags win over environment/config values.
	if cmd.Flags().Changed("file") {
		cfg.Sync.File = syncFile
	}
	if cmd.Flags().Changed("enum") {
		cfg.Sync.Enum = syncEnum
	}
	if cmd.Flags().Changed("lowercase") {
		cfg.Sync.Lowercase = syncLowercase
	}
	if cmd.Flags().Changed("language") {
		cfg.Sync.Language = syncLanguage
	}
	if cmd.Flags().Changed("delete-removals") {
		cfg.Sync.DeleteRemovals = syncDeleteRemovals
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// printSyncReport renders the run report through the logger.
func printSyncReport(l *zap.Logger, report *syncFeature.RunReport) {
	l.Info("Sync report",
		zap.String("run_id", report.RunID),
		zap.String("outcome", string(report.Outcome)),
		zap.Int("local_keys", report.LocalCount),
		zap.Int("remote_terms", report.RemoteCount),
		zap.Int("insertions", len(report.Insertions)),
		zap.Int("removals", len(report.Removals)),
		zap.String("execution_time", report.ExecutionTime),
	)

	printPhase(l, report.Delete)
	printPhase(l, report.Add)

	// Show sample of keys (max 5 for logger)
	printSample(l, "insertion", report.Insertions)
	printSample(l, "removal", report.Removals)
}

func printPhase(l *zap.Logger, phase syncFeature.PhaseResult) {
	if phase.Outcome == syncFeature.OutcomeSkipped {
		l.Info("Phase summary",
			zap.String("phase", phase.Phase),
			zap.String("outcome", string(phase.Outcome)),
			zap.String("reason", phase.SkipReason))
		return
	}
	l.Info("Phase summary",
		zap.String("phase", phase.Phase),
		zap.String("outcome", string(phase.Outcome)),
		zap.Int("requested", phase.Counts.Requested),
		zap.Int("parsed", phase.Counts.Parsed),
		zap.Int("succeeded", phase.Counts.Succeeded))
}

func printSample(l *zap.Logger, kind string, keys []string) {
	maxShow := 5
	if len(keys) < maxShow {
		maxShow = len(keys)
	}
	for i := 0; i < maxShow; i++ {
		l.Info("Sample "+kind, zap.String("key", keys[i]))
	}
	if len(keys) > maxShow {
		l.Info("Additional keys not shown", zap.String("kind", kind), zap.Int("count", len(keys)-maxShow))
	}
}
