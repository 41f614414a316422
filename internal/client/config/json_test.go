package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	b, err := json.Marshal(data)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestParseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("no config flag is a no-op", func(t *testing.T) {
		os.Args = []string{"testbin"}
		var c Config
		c.LoadDefaults()
		parseJson(&c)
		assert.Equal(t, "http://127.0.0.1:8000", c.APIBaseURL)
	})

	t.Run("file overrides only present fields", func(t *testing.T) {
		dir := t.TempDir()
		path := writeTempJSON(t, dir, "studio.json", map[string]any{
			"api_base_url":     "https://qr.example.com",
			"debounce_window":  "250ms",
			"download_backoff": "2s",
		})
		os.Args = []string{"testbin", "-c", path}

		var c Config
		c.LoadDefaults()
		parseJson(&c)

		assert.Equal(t, "https://qr.example.com", c.APIBaseURL)
		assert.Equal(t, 250*time.Millisecond, c.DebounceWindow)
		assert.Equal(t, 2*time.Second, c.DownloadBackoff)
		// untouched fields keep defaults
		assert.Equal(t, 2, c.DownloadMaxRetries)
		assert.Equal(t, 30*time.Second, c.DownloadAttemptTimeout)
	})

	t.Run("zero retries in file is respected", func(t *testing.T) {
		dir := t.TempDir()
		path := writeTempJSON(t, dir, "studio.json", map[string]any{
			"download_max_retries": 0,
		})
		os.Args = []string{"testbin", "-c", path}

		var c Config
		c.LoadDefaults()
		parseJson(&c)

		assert.Equal(t, 0, c.DownloadMaxRetries)
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(t.TempDir(), "absent.json")}
		var c Config
		c.LoadDefaults()
		require.Panics(t, func() { parseJson(&c) })
	})

	t.Run("malformed file panics", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
		os.Args = []string{"testbin", "-c", path}
		var c Config
		c.LoadDefaults()
		require.Panics(t, func() { parseJson(&c) })
	})
}
