package config

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/implgen/internal/cmdtypes"
	"github.com/opmodel/implgen/internal/cmdutil"
	"github.com/opmodel/implgen/internal/config"
	oerrors "github.com/opmodel/implgen/internal/errors"
	"github.com/opmodel/implgen/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the implgen configuration file",
		Long: `Validate the implgen configuration file against the internal schema.

The command validates the configuration file at ~/.implgen/config.yaml by default.
Use --config or IMPLGEN_CONFIG to specify a different location.`,
		Args: cmdutil.NoPositionalArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runVet(c, cfg)
		},
	}
}

func runVet(c *cobra.Command, cfg *cmdtypes.GlobalConfig) error {
	expandedPath, err := configPath(cfg)
	if err != nil {
		return oerrors.NewExitError(err)
	}

	exists, err := config.ConfigFileExists(expandedPath)
	if err != nil {
		return oerrors.NewExitError(fmt.Errorf("checking config file: %w", err))
	}
	if !exists {
		return oerrors.NewExitError(oerrors.NewNotFoundError(
			"config file not found",
			expandedPath,
			"Run 'implgen config init' to create one."))
	}

	validator, err := config.NewValidator()
	if err != nil {
		return oerrors.NewExitError(fmt.Errorf("creating validator: %w", err))
	}

	if err := validator.ValidateFile(expandedPath); err != nil {
		var validationErrs config.ValidationErrors
		if errors.As(err, &validationErrs) {
			w := c.ErrOrStderr()
			fmt.Fprintln(w, "Error: config validation failed")
			fmt.Fprintf(w, "  File: %s\n\n", expandedPath)
			for _, e := range validationErrs {
				fmt.Fprintf(w, "  %s\n", e.Error())
			}
			return &oerrors.ExitError{
				Code:    oerrors.ExitValidationError,
				Err:     oerrors.WrapCause(oerrors.ErrValidation, err),
				Printed: true,
			}
		}
		return oerrors.NewExitError(fmt.Errorf("validating config: %w", err))
	}

	output.Debug("config file validated", "path", expandedPath)
	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark(output.IsTerminal(c.OutOrStdout()), "Config file is valid: "+expandedPath))
	return nil
}
