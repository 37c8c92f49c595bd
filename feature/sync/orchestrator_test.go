package sync

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"locsync/core/termstore"
	"locsync/core/termstore/mocks"
	"locsync/feature/extract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// writeDeclaration creates a declaration file with the given case identifiers.
func writeDeclaration(t *testing.T, keys ...string) string {
	t.Helper()

	content := "enum L10n {\n"
	for _, k := range keys {
		content += "\tcase " + k + "\n"
	}
	content += "}\n"

	path := filepath.Join(t.TempDir(), "Localization.swift")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testConfig(file string) Config {
	return Config{
		File:     file,
		Enum:     "L10n",
		Language: "en",
	}
}

func TestRun_AddOnly(t *testing.T) {
	file := writeDeclaration(t, "welcome", "goodbye")

	store := new(mocks.Store)
	store.On("ListTerms", context.Background(), "en").
		Return(termstore.NewKeySet("welcome"), nil)
	store.On("AddTerms", context.Background(), termstore.NewKeySet("goodbye")).
		Return(termstore.MutationCounts{Requested: 1, Parsed: 1, Succeeded: 1}, nil)

	orchestrator := New(store, zap.NewNop())
	report, err := orchestrator.Run(context.Background(), testConfig(file))

	require.NoError(t, err)
	assert.Equal(t, OutcomeSuccess, report.Outcome)
	assert.Equal(t, OutcomeSuccess, report.Add.Outcome)
	assert.Equal(t, OutcomeSkipped, report.Delete.Outcome)
	assert.Equal(t, []string{"goodbye"}, report.Insertions)
	store.AssertNotCalled(t, "DeleteTerms")
}

func TestRun_PartialFailureOnAdd(t *testing.T) {
	file := writeDeclaration(t, "a", "b", "c")

	store := new(mocks.Store)
	store.On("ListTerms", context.Background(), "en").
		Return(termstore.NewKeySet(), nil)
	store.On("AddTerms", context.Background(), termstore.NewKeySet("a", "b", "c")).
		Return(termstore.MutationCounts{Requested: 3, Parsed: 3, Succeeded: 2}, nil)

	orchestrator := New(store, zap.NewNop())
	report, err := orchestrator.Run(context.Background(), testConfig(file))

	assert.ErrorIs(t, err, ErrPartialSync)
	assert.Equal(t, OutcomePartial, report.Outcome)
	assert.Equal(t, OutcomePartial, report.Add.Outcome)
	assert.Equal(t, 3, report.Add.Counts.Requested)
	assert.Equal(t, 2, report.Add.Counts.Succeeded)
}

func TestRun_ZeroSucceededIsPartialFailure(t *testing.T) {
	file := writeDeclaration(t, "a")

	store := new(mocks.Store)
	store.On("ListTerms", context.Background(), "en").
		Return(termstore.NewKeySet(), nil)
	store.On("AddTerms", context.Background(), termstore.NewKeySet("a")).
		Return(termstore.MutationCounts{Requested: 1, Parsed: 0, Succeeded: 0}, nil)

	orchestrator := New(store, zap.NewNop())
	report, err := orchestrator.Run(context.Background(), testConfig(file))

	assert.ErrorIs(t, err, ErrPartialSync)
	// Both counts survive so callers can tell zero from fewer-than-requested.
	assert.Equal(t, 1, report.Add.Counts.Requested)
	assert.Equal(t, 0, report.Add.Counts.Succeeded)
}

func TestRun_DeleteDisabledSkipsRemoteCall(t *testing.T) {
	file := writeDeclaration(t, "a")

	store := new(mocks.Store)
	store.On("ListTerms", context.Background(), "en").
		Return(termstore.NewKeySet("a", "stale"), nil)

	orchestrator := New(store, zap.NewNop())
	report, err := orchestrator.Run(context.Background(), testConfig(file))

	// Run is not penalized for the skip
	require.NoError(t, err)
	assert.Equal(t, OutcomeSuccess, report.Outcome)
	assert.Equal(t, OutcomeSkipped, report.Delete.Outcome)
	assert.Equal(t, []string{"stale"}, report.Removals)
	store.AssertNotCalled(t, "DeleteTerms")
	store.AssertNotCalled(t, "AddTerms")
}

func TestRun_DeleteEnabled(t *testing.T) {
	file := writeDeclaration(t, "a")

	store := new(mocks.Store)
	store.On("ListTerms", context.Background(), "en").
		Return(termstore.NewKeySet("a", "stale"), nil)
	store.On("DeleteTerms", context.Background(), termstore.NewKeySet("stale")).
		Return(termstore.MutationCounts{Requested: 1, Parsed: 1, Succeeded: 1}, nil)

	cfg := testConfig(file)
	cfg.DeleteRemovals = true

	orchestrator := New(store, zap.NewNop())
	report, err := orchestrator.Run(context.Background(), cfg)

	require.NoError(t, err)
	assert.Equal(t, OutcomeSuccess, report.Outcome)
	assert.Equal(t, OutcomeSuccess, report.Delete.Outcome)
	assert.Equal(t, OutcomeSkipped, report.Add.Outcome)
}

func TestRun_DeleteFailureDoesNotBlockAdd(t *testing.T) {
	file := writeDeclaration(t, "fresh")

	transportErr := &termstore.TransportError{Op: "delete terms", Err: errors.New("connection reset")}

	store := new(mocks.Store)
	store.On("ListTerms", context.Background(), "en").
		Return(termstore.NewKeySet("stale"), nil)
	store.On("DeleteTerms", context.Background(), termstore.NewKeySet("stale")).
		Return(termstore.MutationCounts{}, transportErr)
	store.On("AddTerms", context.Background(), termstore.NewKeySet("fresh")).
		Return(termstore.MutationCounts{Requested: 1, Parsed: 1, Succeeded: 1}, nil)

	cfg := testConfig(file)
	cfg.DeleteRemovals = true

	orchestrator := New(store, zap.NewNop())
	report, err := orchestrator.Run(context.Background(), cfg)

	var te *termstore.TransportError
	assert.ErrorAs(t, err, &te)
	assert.Equal(t, OutcomeFailed, report.Outcome)
	assert.Equal(t, OutcomeFailed, report.Delete.Outcome)
	assert.Equal(t, OutcomeSuccess, report.Add.Outcome)
	store.AssertCalled(t, "AddTerms", context.Background(), termstore.NewKeySet("fresh"))
}

func TestRun_ParseErrorAbortsBeforeRemoteCalls(t *testing.T) {
	store := new(mocks.Store)

	cfg := testConfig(filepath.Join(t.TempDir(), "missing.swift"))
	orchestrator := New(store, zap.NewNop())
	report, err := orchestrator.Run(context.Background(), cfg)

	var pe *extract.ParseError
	assert.ErrorAs(t, err, &pe)
	assert.Nil(t, report)
	store.AssertNotCalled(t, "ListTerms")
}

func TestRun_ListFailureAborts(t *testing.T) {
	file := writeDeclaration(t, "a")

	transportErr := &termstore.TransportError{Op: "list terms", Err: errors.New("timeout")}

	store := new(mocks.Store)
	store.On("ListTerms", context.Background(), "en").
		Return(nil, transportErr)

	orchestrator := New(store, zap.NewNop())
	report, err := orchestrator.Run(context.Background(), testConfig(file))

	var te *termstore.TransportError
	assert.ErrorAs(t, err, &te)
	assert.Nil(t, report)
	store.AssertNotCalled(t, "AddTerms")
	store.AssertNotCalled(t, "DeleteTerms")
}
