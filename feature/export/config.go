package export

// Config holds configuration for the export download pipeline.
type Config struct {
	// Format is the export format: apple_strings or key_value_json.
	Format string `mapstructure:"format" default:"apple_strings"`
	// Destination is the local path the artifact is written to.
	Destination string `mapstructure:"destination" default:"Localizable.strings"`
	// Language overrides the sync language for downloads when set.
	Language string `mapstructure:"language" default:""`
}
