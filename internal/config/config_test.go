package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NotNil(t, cfg.Log.Timestamps)
	assert.True(t, *cfg.Log.Timestamps)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestWithDefaults(t *testing.T) {
	t.Run("fills unset values", func(t *testing.T) {
		cfg := (&Config{}).WithDefaults()
		require.NotNil(t, cfg.Log.Timestamps)
		assert.True(t, *cfg.Log.Timestamps)
		assert.Equal(t, DefaultLevel, cfg.Log.Level)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		off := false
		in := &Config{Log: LogConfig{Timestamps: &off, Level: "warn"}}
		cfg := in.WithDefaults()
		assert.False(t, *cfg.Log.Timestamps)
		assert.Equal(t, "warn", cfg.Log.Level)
	})

	t.Run("does not modify receiver", func(t *testing.T) {
		in := &Config{}
		_ = in.WithDefaults()
		assert.Nil(t, in.Log.Timestamps)
		assert.Empty(t, in.Log.Level)
	})
}
