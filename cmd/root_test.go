package cmd

import (
	"errors"
	"fmt"
	"testing"

	"locsync/core/termstore"
	"locsync/feature/export"
	"locsync/feature/extract"
	"locsync/feature/sync"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"generic", errors.New("boom"), exitGeneric},
		{"parse", &extract.ParseError{Detail: "no enum"}, exitParse},
		{"transport", &termstore.TransportError{Op: "list terms", Err: errors.New("timeout")}, exitTransport},
		{"remote", &termstore.RemoteError{Op: "add terms", Status: 403}, exitRemote},
		{"file write", &export.FileWriteError{Path: "/nope"}, exitFileWrite},
		{"partial sync", sync.ErrPartialSync, exitPartialSync},
		{"wrapped parse", fmt.Errorf("run failed: %w", &extract.ParseError{Detail: "x"}), exitParse},
		{"wrapped partial", fmt.Errorf("sync: %w", sync.ErrPartialSync), exitPartialSync},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, exitCode(tt.err))
		})
	}
}
