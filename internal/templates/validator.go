package templates

import (
	"strings"

	oerrors "github.com/opmodel/implgen/internal/errors"
)

// usageHint is shown with every usage error.
const usageHint = "implgen -n <class_name> -p <output_path>"

// ValidateOptions checks that both required inputs are present. The class name
// is otherwise taken verbatim: it is not checked against any language's
// identifier rules.
func ValidateOptions(opts GenerateOptions) error {
	var missing []string
	if opts.ClassName == "" {
		missing = append(missing, "--name")
	}
	if opts.OutputPath == "" {
		missing = append(missing, "--path")
	}

	switch len(missing) {
	case 0:
		return nil
	case 1:
		return oerrors.NewUsageError("required flag "+missing[0]+" not set", usageHint)
	default:
		return oerrors.NewUsageError("required flags "+strings.Join(missing, ", ")+" not set", usageHint)
	}
}
