package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/opmodel/implgen/internal/cmdtypes"
	"github.com/opmodel/implgen/internal/cmdutil"
	"github.com/opmodel/implgen/internal/config"
	oerrors "github.com/opmodel/implgen/internal/errors"
	"github.com/opmodel/implgen/internal/output"
)

const configHeader = "# implgen configuration\n# Settings here only affect logging.\n\n"

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a new implgen configuration file",
		Long: `Create a new implgen configuration file with default values.

The configuration file is created at ~/.implgen/config.yaml by default.
Use --config or IMPLGEN_CONFIG to specify a different location.`,
		Args: cmdutil.NoPositionalArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInit(c, cfg, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return c
}

func runInit(c *cobra.Command, cfg *cmdtypes.GlobalConfig, force bool) error {
	expandedPath, err := configPath(cfg)
	if err != nil {
		return oerrors.NewExitError(err)
	}

	exists, err := config.ConfigFileExists(expandedPath)
	if err != nil {
		return oerrors.NewExitError(fmt.Errorf("checking config file: %w", err))
	}

	if exists && !force {
		return &oerrors.ExitError{
			Code: oerrors.ExitGeneralError,
			Err:  fmt.Errorf("config file already exists at %s (use --force to overwrite)", expandedPath),
		}
	}

	dir := filepath.Dir(expandedPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return oerrors.NewExitError(fmt.Errorf("creating config directory: %w", err))
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return oerrors.NewExitError(fmt.Errorf("marshaling config: %w", err))
	}
	data = append([]byte(configHeader), data...)

	if err := os.WriteFile(expandedPath, data, 0o644); err != nil {
		return oerrors.NewExitError(fmt.Errorf("writing config file: %w", err))
	}

	output.Debug("config file written", "path", expandedPath, "overwritten", exists)
	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark(output.IsTerminal(c.OutOrStdout()), "Config file created: "+expandedPath))
	return nil
}

// configPath returns the resolved config path with ~ expanded.
func configPath(cfg *cmdtypes.GlobalConfig) (string, error) {
	path := ""
	if cfg != nil {
		path = cfg.ConfigPath
	}
	if path == "" {
		var err error
		path, err = config.GetConfigFile()
		if err != nil {
			return "", fmt.Errorf("getting config file path: %w", err)
		}
	}

	expanded, err := config.ExpandPath(path)
	if err != nil {
		return "", fmt.Errorf("expanding config path: %w", err)
	}
	return expanded, nil
}
