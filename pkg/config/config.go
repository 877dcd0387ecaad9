// pkg/config/config.go
package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config represents the application configuration
type Config struct {
	// Feature engineering settings
	ReferenceYear int

	// Logging
	LogLevel  string
	LogFormat string
}

// Load reads configuration from a .env file (when present) and environment
// variables, falling back to defaults.
func Load() (*Config, error) {
	// A missing .env file is fine; the environment may already be set
	_ = godotenv.Load()

	cfg := &Config{
		ReferenceYear: getEnvAsInt("REFERENCE_YEAR", 2025),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "json"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures all required configuration is present and valid
func (c *Config) Validate() error {
	if c.ReferenceYear <= 0 {
		return errors.New("reference year must be positive")
	}

	switch c.LogFormat {
	case "json", "console":
	default:
		return errors.New("log format must be json or console")
	}

	return nil
}

// Helper functions for environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
