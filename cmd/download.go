package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"locsync/core/config"
	"locsync/core/logger"
	"locsync/core/storage"
	"locsync/core/termstore"
	"locsync/feature/export"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the download command
	downloadLanguage string
	downloadFormat   string
	downloadOutput   string
	downloadPublish  bool
)

// downloadCmd fetches a compiled translation export.
var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download a compiled translation export",
	Long: `Request an export from the remote project, download the artifact, and
write it atomically to the destination path.

Examples:
  # Line-based .strings export
  locsync download --language en --format apple_strings --output Localizable.strings

  # Structured export, published to the storage bucket as well
  locsync download --format key_value_json --output en.json --publish`,
	RunE: runDownload,
}

func init() {
	downloadCmd.Flags().StringVar(&downloadLanguage, "language", "", "Language code (overrides config)")
	downloadCmd.Flags().StringVar(&downloadFormat, "format", "", "Export format: apple_strings or key_value_json")
	downloadCmd.Flags().StringVar(&downloadOutput, "output", "", "Destination path (overrides config)")
	downloadCmd.Flags().BoolVar(&downloadPublish, "publish", false, "Also upload the artifact to the storage bucket")

	RootCmd.AddCommand(downloadCmd)
}

func runDownload(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("language") {
		cfg.Export.Language = downloadLanguage
	}
	if cmd.Flags().Changed("format") {
		cfg.Export.Format = downloadFormat
	}
	if cmd.Flags().Changed("output") {
		cfg.Export.Destination = downloadOutput
	}
	if cmd.Flags().Changed("publish") {
		cfg.Storage.Enabled = downloadPublish
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	format, _ := termstore.ParseFormat(cfg.Export.Format)
	language := cfg.ExportLanguage()

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	store, err := termstore.NewClient(cfg.API)
	if err != nil {
		return fmt.Errorf("failed to create api client: %w", err)
	}

	downloader := export.NewDownloader(store, l)
	written, err := downloader.Run(ctx, language, format, cfg.Export.Destination)
	if err != nil {
		return err
	}

	l.Info("Download completed",
		zap.String("path", written.Path),
		zap.Int("bytes", written.Size))

	if !cfg.Storage.Enabled {
		return nil
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	data, err := readArtifact(written.Path)
	if err != nil {
		return err
	}

	publisher := export.NewPublisher(client, cfg.Storage.Bucket, l)
	object, err := publisher.Publish(ctx, language, format, filepath.Base(written.Path), data)
	if err != nil {
		return err
	}
	l.Info("Publish completed", zap.String("object", object))
	return nil
}

// readArtifact re-reads the written artifact for publishing.
func readArtifact(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact %s: %w", path, err)
	}
	return data, nil
}
