// Package config loads runtime configuration for the QR Studio CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables, including a .env file (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-s string   path to the session file
//	-d int      debounce window (milliseconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "500ms" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://127.0.0.1:8000",
//	  "debounce_window": "500ms",
//	  "download_max_retries": 2,
//	  "download_backoff": "1s",
//	  "download_attempt_timeout": "30s"
//	}
//
// Primary API
//
//   - type Config                     runtime settings for the CLI
//   - func LoadConfig() *Config       defaults, then JSON, env, flags
//   - func (*Config) LoadDefaults()   sets sensible defaults
package config
