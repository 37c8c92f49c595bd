package termstore

// Config holds configuration for the translation-management API client.
type Config struct {
	// Endpoint is the base URL of the translation-management service.
	Endpoint string `mapstructure:"endpoint" default:"https://api.localize.dev"`
	// Token is the API token used for authentication.
	Token string `mapstructure:"token" default:""`
	// ProjectID identifies the remote project holding the terms.
	ProjectID string `mapstructure:"project_id" default:""`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
