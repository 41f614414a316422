package config

import "time"

// Config holds runtime settings for the QR Studio CLI.
//
// Fields:
//   - APIBaseURL: scheme://host:port of the backend REST endpoint.
//   - DebounceWindow: quiet period before an edited form triggers a preview.
//   - DownloadMaxRetries / DownloadBackoff / DownloadAttemptTimeout: the
//     bounded retry policy applied to downloads.
//   - SessionFile: path of the persisted session file ("" = default location).
type Config struct {
	APIBaseURL             string
	SessionFile            string
	DebounceWindow         time.Duration
	DownloadMaxRetries     int
	DownloadBackoff        time.Duration
	DownloadAttemptTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000"
	c.SessionFile = ""
	c.DebounceWindow = 500 * time.Millisecond
	c.DownloadMaxRetries = 2
	c.DownloadBackoff = 1 * time.Second
	c.DownloadAttemptTimeout = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
