package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoaderLoad(t *testing.T) {
	t.Run("loads config from file", func(t *testing.T) {
		path := writeConfig(t, `
log:
  timestamps: false
  level: debug
`)
		cfg, err := NewLoader().Load(path)

		require.NoError(t, err)
		require.NotNil(t, cfg.Log.Timestamps)
		assert.False(t, *cfg.Log.Timestamps)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("returns empty config for missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nonexistent.yaml")

		cfg, err := NewLoader().Load(path)

		require.NoError(t, err)
		assert.Nil(t, cfg.Log.Timestamps)
		assert.Empty(t, cfg.Log.Level)
	})

	t.Run("loads from environment variables", func(t *testing.T) {
		t.Setenv("IMPLGEN_LOG_TIMESTAMPS", "false")
		t.Setenv("IMPLGEN_LOG_LEVEL", "warn")

		cfg, err := NewLoader().Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))

		require.NoError(t, err)
		require.NotNil(t, cfg.Log.Timestamps)
		assert.False(t, *cfg.Log.Timestamps)
		assert.Equal(t, "warn", cfg.Log.Level)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := writeConfig(t, "log:\n  level: debug\n")
		t.Setenv("IMPLGEN_LOG_LEVEL", "error")

		cfg, err := NewLoader().Load(path)

		require.NoError(t, err)
		assert.Equal(t, "error", cfg.Log.Level)
	})

	t.Run("uses IMPLGEN_CONFIG when path is empty", func(t *testing.T) {
		path := writeConfig(t, "log:\n  level: warn\n")
		t.Setenv(EnvConfig, path)

		cfg, err := NewLoader().Load("")

		require.NoError(t, err)
		assert.Equal(t, "warn", cfg.Log.Level)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		path := writeConfig(t, "log: [unterminated\n")

		_, err := NewLoader().Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading config file")
	})
}
