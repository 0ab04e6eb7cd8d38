package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		path := writeTemp(t, "cfg.json", `{"api_url":"http://www.example:9000/clients","request_timeout":"3s","search_debounce":500000000}`)

		cfg := Default()
		require.NoError(t, LoadFile(cfg, path))

		assert.Equal(t, "http://www.example:9000/clients", cfg.APIURL)
		assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
		assert.Equal(t, 500*time.Millisecond, cfg.SearchDebounce)
	})

	t.Run("yaml", func(t *testing.T) {
		path := writeTemp(t, "cfg.yaml", "api_url: https://crm.example/api/clients\ntime_zone: UTC\nlog_format: json\n")

		cfg := Default()
		require.NoError(t, LoadFile(cfg, path))

		assert.Equal(t, "https://crm.example/api/clients", cfg.APIURL)
		assert.Equal(t, "UTC", cfg.TimeZone)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, 300*time.Millisecond, cfg.SearchDebounce)
	})

	t.Run("empty file object changes nothing", func(t *testing.T) {
		path := writeTemp(t, "cfg.json", `{}`)

		cfg := Default()
		require.NoError(t, LoadFile(cfg, path))
		assert.Equal(t, Default(), cfg)
	})

	t.Run("invalid json", func(t *testing.T) {
		path := writeTemp(t, "bad.json", `{ this is not valid json`)
		require.Error(t, LoadFile(Default(), path))
	})

	t.Run("missing file", func(t *testing.T) {
		require.Error(t, LoadFile(Default(), filepath.Join(t.TempDir(), "nope.json")))
	})
}
