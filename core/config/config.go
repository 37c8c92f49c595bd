package config

import (
	"fmt"
	"reflect"
	"strings"

	"locsync/core/logger"
	"locsync/core/storage"
	"locsync/core/termstore"
	"locsync/feature/export"
	"locsync/feature/sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// API holds configuration for the translation-management API client.
	API termstore.Config `mapstructure:"api"`
	// Sync holds configuration for the reconciliation run.
	Sync sync.Config `mapstructure:"sync"`
	// Export holds configuration for the export download pipeline.
	Export export.Config `mapstructure:"export"`
	// Storage holds configuration for export publishing (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	// We construct the path to .env
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. CI)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. API_TOKEN -> api.token)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks that everything the core needs is resolved. The core never
// prompts; missing values must fail here, in the CLI layer.
func (c *Config) Validate() error {
	if c.API.Token == "" {
		return fmt.Errorf("api token is not set (API_TOKEN)")
	}
	if c.API.ProjectID == "" {
		return fmt.Errorf("project id is not set (API_PROJECT_ID)")
	}
	if c.Sync.Language == "" {
		return fmt.Errorf("language is not set (SYNC_LANGUAGE)")
	}
	if _, ok := termstore.ParseFormat(c.Export.Format); !ok {
		return fmt.Errorf("unknown export format %q", c.Export.Format)
	}
	return nil
}

// ExportLanguage returns the language for downloads: the export-specific
// override when set, otherwise the sync language.
func (c *Config) ExportLanguage() string {
	if c.Export.Language != "" {
		return c.Export.Language
	}
	return c.Sync.Language
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
