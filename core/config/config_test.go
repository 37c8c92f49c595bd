package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(".")
	require.NoError(t, err)

	assert.Equal(t, "https://api.localize.dev", cfg.API.Endpoint)
	assert.Equal(t, 30, cfg.API.TimeoutSeconds)
	assert.Equal(t, "en", cfg.Sync.Language)
	assert.False(t, cfg.Sync.DeleteRemovals)
	assert.Equal(t, "apple_strings", cfg.Export.Format)
	assert.Equal(t, "localizations", cfg.Storage.Bucket)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("API_TOKEN", "secret")
	t.Setenv("API_PROJECT_ID", "proj-9")
	t.Setenv("SYNC_LANGUAGE", "de")
	t.Setenv("SYNC_DELETE_REMOVALS", "true")
	t.Setenv("EXPORT_FORMAT", "key_value_json")

	cfg, err := LoadConfig(".")
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.API.Token)
	assert.Equal(t, "proj-9", cfg.API.ProjectID)
	assert.Equal(t, "de", cfg.Sync.Language)
	assert.True(t, cfg.Sync.DeleteRemovals)
	assert.Equal(t, "key_value_json", cfg.Export.Format)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := LoadConfig(".")
		require.NoError(t, err)
		cfg.API.Token = "secret"
		cfg.API.ProjectID = "proj-1"
		return cfg
	}

	t.Run("resolved config passes", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("missing token", func(t *testing.T) {
		cfg := base()
		cfg.API.Token = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing project", func(t *testing.T) {
		cfg := base()
		cfg.API.ProjectID = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing language", func(t *testing.T) {
		cfg := base()
		cfg.Sync.Language = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown export format", func(t *testing.T) {
		cfg := base()
		cfg.Export.Format = "gettext_po"
		assert.Error(t, cfg.Validate())
	})
}

func TestExportLanguage(t *testing.T) {
	cfg, err := LoadConfig(".")
	require.NoError(t, err)

	cfg.Sync.Language = "en"
	assert.Equal(t, "en", cfg.ExportLanguage())

	cfg.Export.Language = "fr"
	assert.Equal(t, "fr", cfg.ExportLanguage())
}
