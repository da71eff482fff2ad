// Package cmd provides CLI command implementations.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	configcmd "github.com/opmodel/implgen/internal/cmd/config"
	"github.com/opmodel/implgen/internal/cmdtypes"
	"github.com/opmodel/implgen/internal/cmdutil"
	"github.com/opmodel/implgen/internal/config"
	"github.com/opmodel/implgen/internal/output"
	"github.com/opmodel/implgen/internal/templates"
)

// globalFlags holds the persistent flags shared by every command.
type globalFlags struct {
	config     string
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command for implgen.
func NewRootCmd() *cobra.Command {
	var (
		cfg   cmdtypes.GlobalConfig
		flags globalFlags
		gen   cmdutil.GenerateFlags
	)

	rootCmd := &cobra.Command{
		Use:   "implgen -n <class_name> -p <output_path>",
		Short: "Generate a C++ class from the " + templates.Placeholder + " template pair",
		Long: `implgen generates a C++ class from the template pair ` + strings.Join(templates.FileNames(), " and ") + `
in the current directory.

Every occurrence of ` + templates.Placeholder + ` is replaced with the class name and the
result is written to <output_path>/<class_name>/<class_name>.h and .cpp.
Missing directories are created and existing files are overwritten.

All templates are read before anything is written. Generation stops at the
first directory or write failure; files written before the failure are kept.`,
		Example: `  implgen -n Widget -p src
  implgen --name AudioMixer --path ./modules`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(c *cobra.Command, args []string) error {
			if err := cmdutil.NoPositionalArgs(c, args); err != nil {
				return err
			}
			if err := gen.Validate(); err != nil {
				return cmdutil.UsageError(c, err)
			}
			return nil
		},
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, &cfg, flags)
		},
		RunE: func(c *cobra.Command, _ []string) error {
			return runGenerate(c, &cfg, &gen)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "Path to config file (env: IMPLGEN_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")
	gen.AddTo(rootCmd)

	rootCmd.SetFlagErrorFunc(cmdutil.FlagError)

	rootCmd.AddCommand(configcmd.NewConfigCmd(&cfg))
	rootCmd.AddCommand(NewVersionCmd(&cfg))

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(c *cobra.Command, cfg *cmdtypes.GlobalConfig, flags globalFlags) error {
	// A broken or unreachable config must not block generation or
	// `config init --force`.
	path, pathErr := config.ResolveConfigPath(config.ResolveConfigPathOptions{FlagValue: flags.config})
	loaded := &config.Config{}
	var loadErr error
	if pathErr == nil {
		loaded, loadErr = config.NewLoader().Load(path.ConfigPath)
		if loadErr != nil {
			loaded = &config.Config{}
		}
	}

	timestamps := config.ResolveTimestamps(c.Flags().Changed("timestamps"), flags.timestamps, loaded)
	output.SetupLogging(output.LogConfig{
		Verbose:    flags.verbose,
		Timestamps: output.BoolPtr(timestamps.Value.(bool)),
		Level:      loaded.Log.Level,
	})

	switch {
	case pathErr != nil:
		output.Warn("ignoring config file", "error", pathErr)
	case loadErr != nil:
		output.Warn("ignoring config file", "path", path.ConfigPath, "error", loadErr)
	}

	cfg.Config = loaded.WithDefaults()
	cfg.ConfigPath = path.ConfigPath
	cfg.ConfigSource = path.Source
	cfg.Verbose = flags.verbose

	config.LogResolvedValues([]config.ResolvedValue{
		path.ResolvedValue(),
		timestamps,
		{Key: "log.level", Value: cfg.Config.Log.Level, Source: levelSource(loaded)},
	})

	return nil
}

func levelSource(loaded *config.Config) config.ConfigSource {
	if loaded.Log.Level != "" {
		return config.SourceConfig
	}
	return config.SourceDefault
}
