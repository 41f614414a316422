package config

import (
	"encoding/json"
	"os"

	"qrstudio/internal/flagx"
	"qrstudio/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "500ms"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	APIBaseURL             string         `json:"api_base_url"`
	SessionFile            string         `json:"session_file"`
	DebounceWindow         timex.Duration `json:"debounce_window"`
	DownloadMaxRetries     *int           `json:"download_max_retries"`
	DownloadBackoff        timex.Duration `json:"download_backoff"`
	DownloadAttemptTimeout timex.Duration `json:"download_attempt_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c / -config flags (flagx.JsonConfigFlags);
// when no path is given the function is a no-op. Read or unmarshal errors
// panic, matching the fail-fast policy of the flags stage. Only fields
// present in the file override the current Config values.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.SessionFile != "" {
		cfg.SessionFile = jc.SessionFile
	}
	if jc.DebounceWindow.Duration != 0 {
		cfg.DebounceWindow = jc.DebounceWindow.Duration
	}
	if jc.DownloadMaxRetries != nil {
		cfg.DownloadMaxRetries = *jc.DownloadMaxRetries
	}
	if jc.DownloadBackoff.Duration != 0 {
		cfg.DownloadBackoff = jc.DownloadBackoff.Duration
	}
	if jc.DownloadAttemptTimeout.Duration != 0 {
		cfg.DownloadAttemptTimeout = jc.DownloadAttemptTimeout.Duration
	}
}
