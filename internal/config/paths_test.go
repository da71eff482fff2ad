package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	paths, err := DefaultPaths()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".implgen"), paths.HomeDir)
	assert.Equal(t, filepath.Join(home, ".implgen", "config.yaml"), paths.ConfigFile)
}

func TestGetConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	t.Run("default", func(t *testing.T) {
		t.Setenv(EnvConfig, "")
		path, err := GetConfigFile()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".implgen", "config.yaml"), path)
	})

	t.Run("env override", func(t *testing.T) {
		t.Setenv(EnvConfig, "/etc/implgen.yaml")
		path, err := GetConfigFile()
		require.NoError(t, err)
		assert.Equal(t, "/etc/implgen.yaml", path)
	})
}

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"no tilde", "/absolute/path", "/absolute/path"},
		{"relative path", "relative/path", "relative/path"},
		{"tilde only", "~", homeDir},
		{"tilde with path", "~/.implgen/config.yaml", filepath.Join(homeDir, ".implgen", "config.yaml")},
		{"tilde username not expanded", "~username/file", "~username/file"},
		{"tilde in middle not expanded", "/path/~/file", "/path/~/file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ExpandPath(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfigFileExists(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(existing, []byte("log: {}\n"), 0o644))

	exists, err := ConfigFileExists(existing)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = ConfigFileExists(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.False(t, exists)

	t.Run("empty uses env path", func(t *testing.T) {
		t.Setenv(EnvConfig, existing)
		exists, err := ConfigFileExists("")
		require.NoError(t, err)
		assert.True(t, exists)
	})
}
