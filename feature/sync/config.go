package sync

// Config holds configuration for a reconciliation run. It arrives fully
// resolved; flag parsing and any interactive fallbacks happen in the CLI
// layer before the orchestrator runs.
type Config struct {
	// File is the path to the local declaration file.
	File string `mapstructure:"file" default:"Localization.swift"`
	// Enum is the enumeration name to scope extraction to (empty = first).
	Enum string `mapstructure:"enum" default:""`
	// Lowercase applies a lowercasing transform to every extracted key.
	Lowercase bool `mapstructure:"lowercase" default:"false"`
	// Language is the language code used when listing remote terms.
	Language string `mapstructure:"language" default:"en"`
	// DeleteRemovals enables deletion of remote terms absent locally.
	DeleteRemovals bool `mapstructure:"delete_removals" default:"false"`
}
