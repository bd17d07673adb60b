// Package config loads process-level settings from the environment.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config carries the settings every command starts from. CLI flags may
// override individual fields after loading.
type Config struct {
	APIBaseURL  string
	Language    string
	HTTPTimeout time.Duration
}

const (
	defaultAPIBaseURL = "http://localhost:3000/api"
	defaultLanguage   = "ro"
	defaultTimeout    = 10 * time.Second
)

// Load reads an optional .env file and the FINDASH_* environment variables.
// Missing values fall back to defaults; a missing .env file is not an error.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		APIBaseURL:  getEnv("FINDASH_API_URL", defaultAPIBaseURL),
		Language:    getEnv("FINDASH_LANG", defaultLanguage),
		HTTPTimeout: defaultTimeout,
	}
	if v := os.Getenv("FINDASH_HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.HTTPTimeout = d
		}
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultVal
}
