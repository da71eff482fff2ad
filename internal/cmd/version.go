package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/implgen/internal/cmdtypes"
	"github.com/opmodel/implgen/internal/cmdutil"
	"github.com/opmodel/implgen/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show implgen version information.

Displays:
  - implgen version, commit, and build date
  - Go version and platform
  - CUE SDK version used for config validation`,
		Args: cmdutil.NoPositionalArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			fmt.Fprint(c.OutOrStdout(), version.Get().String())
			return nil
		},
	}
}
