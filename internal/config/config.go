// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Env: IMPLGEN_LOG_TIMESTAMPS, Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`

	// Level is the minimum log level: debug, info, warn or error.
	// Env: IMPLGEN_LOG_LEVEL, Default: info. --verbose forces debug.
	Level string `mapstructure:"level" yaml:"level,omitempty"`
}

// Config represents the implgen configuration.
// Loaded from ~/.implgen/config.yaml, validated against the embedded CUE schema.
// None of these settings change what gets generated.
type Config struct {
	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log"`
}

// DefaultLevel is the log level used when none is configured.
const DefaultLevel = "info"

// DefaultConfig returns a Config with all default values populated.
// Used by `implgen config init` to generate the initial config file.
func DefaultConfig() *Config {
	timestamps := true
	return &Config{
		Log: LogConfig{
			Timestamps: &timestamps,
			Level:      DefaultLevel,
		},
	}
}

// WithDefaults returns a copy of the config with unset values filled in.
func (c *Config) WithDefaults() *Config {
	out := *c
	defaults := DefaultConfig()
	if out.Log.Timestamps == nil {
		out.Log.Timestamps = defaults.Log.Timestamps
	}
	if out.Log.Level == "" {
		out.Log.Level = defaults.Log.Level
	}
	return &out
}
