package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variables recognized by the client. A .env file in the working
// directory is loaded first (without overriding variables already set in the
// process environment), matching how the hosted frontend receives its API URL.
const (
	EnvAPIBaseURL  = "QRSTUDIO_API_URL"
	EnvSessionFile = "QRSTUDIO_SESSION_FILE"
)

func parseEnv(cfg *Config) {
	// Ignore a missing .env; only explicitly set variables matter.
	_ = godotenv.Load()

	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(EnvSessionFile); v != "" {
		cfg.SessionFile = v
	}
}
