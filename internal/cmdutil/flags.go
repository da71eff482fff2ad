// Package cmdutil provides shared command utilities: the generation flag
// group, usage error reporting, and result formatting.
package cmdutil

import (
	"fmt"

	"github.com/spf13/cobra"

	oerrors "github.com/opmodel/implgen/internal/errors"
	"github.com/opmodel/implgen/internal/templates"
)

// GenerateFlags holds the flags that drive class generation.
type GenerateFlags struct {
	Name string
	Path string
}

// AddTo registers the generation flags on the given cobra command.
func (f *GenerateFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Name, "name", "n", "",
		"Class name that replaces "+templates.Placeholder+" (required)")
	cmd.Flags().StringVarP(&f.Path, "path", "p", "",
		"Directory the class directory is created in (required)")
}

// Options converts the flags into generator options.
func (f *GenerateFlags) Options() templates.GenerateOptions {
	return templates.GenerateOptions{
		ClassName:  f.Name,
		OutputPath: f.Path,
	}
}

// Validate checks that both required flags carry a value.
func (f *GenerateFlags) Validate() error {
	return templates.ValidateOptions(f.Options())
}

// UsageError reports err together with the command usage on stderr and
// returns an ExitError with the usage exit code that is already marked as
// printed.
func UsageError(cmd *cobra.Command, err error) error {
	w := cmd.ErrOrStderr()
	fmt.Fprintf(w, "%v\n\n", err)
	fmt.Fprint(w, cmd.UsageString())
	return &oerrors.ExitError{
		Code:    oerrors.ExitUsageError,
		Err:     err,
		Printed: true,
	}
}

// NoPositionalArgs rejects positional arguments as a usage error.
func NoPositionalArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	return UsageError(cmd, oerrors.NewUsageError(
		fmt.Sprintf("unexpected argument %q", args[0]),
		fmt.Sprintf("Usage: %s", cmd.UseLine())))
}

// FlagError converts a flag parse failure into a usage error.
func FlagError(cmd *cobra.Command, err error) error {
	return UsageError(cmd, oerrors.NewUsageError(err.Error(),
		fmt.Sprintf("Run '%s --help' for usage.", cmd.CommandPath())))
}
