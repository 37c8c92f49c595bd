package termstore

import (
	"context"
	"sort"
)

// KeySet is a set of unique localization keys.
type KeySet map[string]struct{}

// NewKeySet builds a set from the given keys. Duplicates collapse silently.
func NewKeySet(keys ...string) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Add inserts a key into the set.
func (s KeySet) Add(key string) {
	s[key] = struct{}{}
}

// Contains reports whether key is in the set.
func (s KeySet) Contains(key string) bool {
	_, ok := s[key]
	return ok
}

// Len returns the number of keys in the set.
func (s KeySet) Len() int {
	return len(s)
}

// Sorted returns the keys in lexicographic order for deterministic output.
func (s KeySet) Sorted() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal reports whether two sets contain exactly the same keys.
func (s KeySet) Equal(other KeySet) bool {
	if len(s) != len(other) {
		return false
	}
	for k := range s {
		if _, ok := other[k]; !ok {
			return false
		}
	}
	return true
}

// MutationCounts reports the effect of an add or delete call as seen by the
// remote service. Requested is set client-side; Parsed and Succeeded come from
// the response payload.
type MutationCounts struct {
	// Requested is the number of terms sent in the request.
	Requested int `json:"requested"`
	// Parsed is the number of terms the service accepted as well-formed.
	Parsed int `json:"parsed"`
	// Succeeded is the number of terms actually added or deleted.
	Succeeded int `json:"succeeded"`
}

// ExportFormat identifies a compiled translation export format.
type ExportFormat string

const (
	// FormatAppleStrings is the line-based .strings export.
	FormatAppleStrings ExportFormat = "apple_strings"
	// FormatKeyValueJSON is the structured key/value JSON export.
	FormatKeyValueJSON ExportFormat = "key_value_json"
)

// ParseFormat validates a format string from configuration or flags.
func ParseFormat(s string) (ExportFormat, bool) {
	switch ExportFormat(s) {
	case FormatAppleStrings, FormatKeyValueJSON:
		return ExportFormat(s), true
	}
	return "", false
}

// ContentType returns the MIME type used when publishing an export artifact.
func (f ExportFormat) ContentType() string {
	if f == FormatKeyValueJSON {
		return "application/json"
	}
	return "text/plain; charset=utf-8"
}

// Store defines the interface for remote term operations.
// The concrete implementation talks HTTPS to the translation-management
// service; tests use the mock in core/termstore/mocks.
type Store interface {
	// ListTerms returns every term registered for the given language.
	ListTerms(ctx context.Context, language string) (KeySet, error)
	// AddTerms registers new terms and reports per-call effect counts.
	AddTerms(ctx context.Context, keys KeySet) (MutationCounts, error)
	// DeleteTerms removes terms and reports per-call effect counts.
	DeleteTerms(ctx context.Context, keys KeySet) (MutationCounts, error)
	// RequestExport asks the service to generate an export and returns the
	// download URL once generation completes.
	RequestExport(ctx context.Context, language string, format ExportFormat) (string, error)
	// FetchExport downloads the export artifact from a URL returned by
	// RequestExport.
	FetchExport(ctx context.Context, url string) ([]byte, error)
}
