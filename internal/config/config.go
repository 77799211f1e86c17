package config

import (
	"os"
	"strconv"

	"tablescrub/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Clean   CleanConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port              string
	MaxConcurrentRuns int64
}

// StorageConfig holds file system paths and upload limits
type StorageConfig struct {
	UploadDir   string
	OutputDir   string
	MaxUploadMB int64
}

// CleanConfig holds default cleaning behavior
type CleanConfig struct {
	FillStrategy string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:              getEnvOrDefault("PORT", "8080"),
			MaxConcurrentRuns: getEnvInt64OrDefault("MAX_CONCURRENT_RUNS", 4),
		},
		Storage: StorageConfig{
			UploadDir:   getEnvOrDefault("UPLOAD_DIR", "uploads"),
			OutputDir:   getEnvOrDefault("OUTPUT_DIR", "outputs"),
			MaxUploadMB: getEnvInt64OrDefault("MAX_UPLOAD_MB", 50),
		},
		Clean: CleanConfig{
			FillStrategy: getEnvOrDefault("FILL_STRATEGY", "auto"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Server.MaxConcurrentRuns < 1 {
		return errors.ConfigInvalid("MAX_CONCURRENT_RUNS must be at least 1")
	}
	if config.Storage.UploadDir == "" || config.Storage.OutputDir == "" {
		return errors.ConfigInvalid("upload and output directories are required")
	}
	if config.Storage.MaxUploadMB < 1 {
		return errors.ConfigInvalid("MAX_UPLOAD_MB must be at least 1")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
