package mocks

import (
	"context"

	"locsync/core/termstore"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of termstore.Store
type Store struct {
	mock.Mock
}

func (m *Store) ListTerms(ctx context.Context, language string) (termstore.KeySet, error) {
	args := m.Called(ctx, language)
	if set, ok := args.Get(0).(termstore.KeySet); ok {
		return set, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) AddTerms(ctx context.Context, keys termstore.KeySet) (termstore.MutationCounts, error) {
	args := m.Called(ctx, keys)
	return args.Get(0).(termstore.MutationCounts), args.Error(1)
}

func (m *Store) DeleteTerms(ctx context.Context, keys termstore.KeySet) (termstore.MutationCounts, error) {
	args := m.Called(ctx, keys)
	return args.Get(0).(termstore.MutationCounts), args.Error(1)
}

func (m *Store) RequestExport(ctx context.Context, language string, format termstore.ExportFormat) (string, error) {
	args := m.Called(ctx, language, format)
	return args.String(0), args.Error(1)
}

func (m *Store) FetchExport(ctx context.Context, url string) ([]byte, error) {
	args := m.Called(ctx, url)
	if data, ok := args.Get(0).([]byte); ok {
		return data, args.Error(1)
	}
	return nil, args.Error(1)
}
