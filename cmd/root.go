package cmd

import (
	"errors"
	"fmt"
	"os"

	"locsync/core/logger"
	"locsync/core/termstore"
	"locsync/feature/export"
	"locsync/feature/extract"
	"locsync/feature/sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Exit codes surfaced to callers. Partial failure is non-zero but
// recoverable; re-running the sync retries the leftover difference.
const (
	exitGeneric     = 1
	exitParse       = 2
	exitTransport   = 3
	exitRemote      = 4
	exitFileWrite   = 5
	exitPartialSync = 6
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "locsync",
	Short: "Localization Term Sync",
	Long: `Locsync keeps the term list of a remote translation-management project
in step with a local declaration file, and downloads compiled translation
exports for local use.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting
		// We default to console format to match user expectations (CLI tool)
		// We use "debug" level configuration to get ISO8601 timestamps (DevConfig) instead of Epoch (ProdConfig)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			// Log the error with structured logger (Console encoding will make it pretty)
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(exitCode(err))
	}
}

// exitCode maps the error taxonomy to distinct exit codes.
func exitCode(err error) int {
	var parseErr *extract.ParseError
	var transportErr *termstore.TransportError
	var remoteErr *termstore.RemoteError
	var writeErr *export.FileWriteError

	switch {
	case errors.As(err, &parseErr):
		return exitParse
	case errors.As(err, &transportErr):
		return exitTransport
	case errors.As(err, &remoteErr):
		return exitRemote
	case errors.As(err, &writeErr):
		return exitFileWrite
	case errors.Is(err, sync.ErrPartialSync):
		return exitPartialSync
	}
	return exitGeneric
}
