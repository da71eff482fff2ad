package config

import (
	"os"
	"sort"
	"strconv"

	"github.com/opmodel/implgen/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue records how a single configuration key was resolved.
type ResolvedValue struct {
	Key      string
	Value    any
	Source   ConfigSource
	Shadowed map[ConfigSource]string
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPathResult contains the resolved config path and its source.
type ResolveConfigPathResult struct {
	// ConfigPath is the resolved config file path.
	ConfigPath string
	// Source indicates where the config path came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) IMPLGEN_CONFIG env, (3) ~/.implgen/config.yaml default
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolveConfigPathResult, error) {
	result := ResolveConfigPathResult{
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv(EnvConfig)

	// The default path needs a home directory; only an error when it is the
	// value that would be used.
	defaultPath := ""
	if paths, err := DefaultPaths(); err == nil {
		defaultPath = paths.ConfigFile
	} else if opts.FlagValue == "" && envValue == "" {
		return result, err
	}

	switch {
	case opts.FlagValue != "":
		result.ConfigPath = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		if defaultPath != "" {
			result.Shadowed[SourceDefault] = defaultPath
		}
	case envValue != "":
		result.ConfigPath = envValue
		result.Source = SourceEnv
		if defaultPath != "" {
			result.Shadowed[SourceDefault] = defaultPath
		}
	default:
		result.ConfigPath = defaultPath
		result.Source = SourceDefault
	}

	return result, nil
}

// ResolveTimestamps resolves whether log timestamps are shown using precedence:
// (1) --timestamps flag when explicitly set, (2) log.timestamps from env or
// config file, (3) default true.
func ResolveTimestamps(flagSet, flagValue bool, cfg *Config) ResolvedValue {
	rv := ResolvedValue{
		Key:      "log.timestamps",
		Shadowed: make(map[ConfigSource]string),
	}

	var configured *bool
	if cfg != nil {
		configured = cfg.Log.Timestamps
	}

	switch {
	case flagSet:
		rv.Value = flagValue
		rv.Source = SourceFlag
		if configured != nil {
			rv.Shadowed[SourceConfig] = strconv.FormatBool(*configured)
		}
	case configured != nil:
		rv.Value = *configured
		rv.Source = SourceConfig
	default:
		rv.Value = true
		rv.Source = SourceDefault
	}

	return rv
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for _, source := range shadowedSources(v.Shadowed) {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", v.Shadowed[source],
			)
		}
	}
}

// shadowedSources returns the keys of shadowed in a stable order.
func shadowedSources(shadowed map[ConfigSource]string) []ConfigSource {
	sources := make([]ConfigSource, 0, len(shadowed))
	for source := range shadowed {
		sources = append(sources, source)
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i] < sources[j] })
	return sources
}

// ResolvedValue converts a path resolution into a loggable value.
func (r ResolveConfigPathResult) ResolvedValue() ResolvedValue {
	return ResolvedValue{
		Key:      "config",
		Value:    r.ConfigPath,
		Source:   r.Source,
		Shadowed: r.Shadowed,
	}
}
