package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/implgen/internal/cmdtypes"
	"github.com/opmodel/implgen/internal/cmdutil"
	oerrors "github.com/opmodel/implgen/internal/errors"
	"github.com/opmodel/implgen/internal/output"
	"github.com/opmodel/implgen/internal/templates"
)

func runGenerate(c *cobra.Command, cfg *cmdtypes.GlobalConfig, flags *cmdutil.GenerateFlags) error {
	output.Debug("generate",
		"name", flags.Name,
		"path", flags.Path,
		"config", cfg.ConfigPath)

	result, err := templates.NewGenerator(flags.Options()).Generate()
	if err != nil {
		cmdutil.LogPartialResult(result)
		return oerrors.NewExitError(err)
	}

	cmdutil.PrintGenerateResult(c.OutOrStdout(), result, output.IsTerminal(c.OutOrStdout()))
	return nil
}
