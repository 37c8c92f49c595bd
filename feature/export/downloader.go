package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"locsync/core/termstore"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FileWriteError means the destination path could not be written: the
// directory does not exist, is not writable, or the rename failed.
type FileWriteError struct {
	Path string
	Err  error
}

func (e *FileWriteError) Error() string {
	return fmt.Sprintf("cannot write %s: %v", e.Path, e.Err)
}

func (e *FileWriteError) Unwrap() error { return e.Err }

// WrittenFile describes a successfully written export artifact.
type WrittenFile struct {
	// Path is the destination the artifact was written to.
	Path string `json:"path"`
	// Size is the artifact size in bytes.
	Size int `json:"size"`
	// RunID identifies the download run across logs.
	RunID string `json:"run_id"`
}

// Downloader requests a compiled translation export from the remote service
// and writes it to a local destination.
type Downloader struct {
	store  termstore.Store
	logger *zap.Logger
}

// NewDownloader creates a downloader.
func NewDownloader(store termstore.Store, logger *zap.Logger) *Downloader {
	return &Downloader{store: store, logger: logger}
}

// Run requests an export, fetches the artifact, and writes it atomically to
// destPath. A pre-existing file at the destination is overwritten; a failure
// at any point leaves the destination untouched.
func (d *Downloader) Run(ctx context.Context, language string, format termstore.ExportFormat, destPath string) (WrittenFile, error) {
	startTime := time.Now()
	runID := uuid.NewString()
	log := d.logger.With(zap.String("run_id", runID))

	log.Info("Requesting export",
		zap.String("language", language),
		zap.String("format", string(format)))
	url, err := d.store.RequestExport(ctx, language, format)
	if err != nil {
		return WrittenFile{}, err
	}

	log.Info("Fetching export artifact")
	data, err := d.store.FetchExport(ctx, url)
	if err != nil {
		return WrittenFile{}, err
	}
	log.Info("Export fetched", zap.Int("bytes", len(data)))

	if err := writeAtomic(destPath, data); err != nil {
		return WrittenFile{}, err
	}

	log.Info("Export written",
		zap.String("path", destPath),
		zap.String("total_time", time.Since(startTime).String()))
	return WrittenFile{Path: destPath, Size: len(data), RunID: runID}, nil
}

// writeAtomic stages the artifact in a temp file next to the destination and
// renames it into place, so a mid-write failure never leaves a partial file
// at the destination path.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".locsync-export-*")
	if err != nil {
		return &FileWriteError{Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &FileWriteError{Path: path, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &FileWriteError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &FileWriteError{Path: path, Err: err}
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &FileWriteError{Path: path, Err: err}
	}
	return nil
}
