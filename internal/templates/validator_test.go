package templates

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	oerrors "github.com/opmodel/implgen/internal/errors"
)

func TestValidateOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        GenerateOptions
		wantErr     bool
		wantMessage string
	}{
		{"both set", GenerateOptions{ClassName: "Widget", OutputPath: "out"}, false, ""},
		{"non identifier name accepted", GenerateOptions{ClassName: "my-widget 2", OutputPath: "out"}, false, ""},
		{"missing name", GenerateOptions{OutputPath: "out"}, true, "required flag --name not set"},
		{"missing path", GenerateOptions{ClassName: "Widget"}, true, "required flag --path not set"},
		{"missing both", GenerateOptions{}, true, "required flags --name, --path not set"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOptions(tt.opts)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, oerrors.ErrUsage))
			assert.Contains(t, err.Error(), tt.wantMessage)
			assert.Equal(t, oerrors.ExitUsageError, oerrors.ExitCodeFromError(err))
		})
	}
}
