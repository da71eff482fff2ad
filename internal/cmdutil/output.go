package cmdutil

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/opmodel/implgen/internal/output"
	"github.com/opmodel/implgen/internal/templates"
)

// PrintGenerateResult prints a checkmark summary followed by a tree of the
// written artifacts.
func PrintGenerateResult(w io.Writer, result *templates.GenerateResult, styled bool) {
	dir := result.ClassDir
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}

	fmt.Fprintln(w, output.FormatCheckmark(styled, fmt.Sprintf("Generated class '%s' in %s", result.ClassName, dir)))
	fmt.Fprint(w, output.RenderFileTree(result.ClassName, ArtifactEntries(result), output.TreeOptions{Styled: styled}))
}

// ArtifactEntries converts the written artifacts into tree entries.
func ArtifactEntries(result *templates.GenerateResult) []output.FileEntry {
	entries := make([]output.FileEntry, 0, len(result.Artifacts))
	for _, a := range result.Artifacts {
		entries = append(entries, output.FileEntry{
			Path:        a.RelPath,
			Description: a.Template.Description,
			Status:      a.Status,
		})
	}
	return entries
}

// LogPartialResult reports the artifact that failed and warns about artifacts
// written before generation stopped. Written artifacts are left in place.
func LogPartialResult(result *templates.GenerateResult) {
	if result == nil {
		return
	}
	if result.Failed != nil {
		output.Error("artifact not written", "path", result.Failed.TargetPath, "status", result.Failed.Status)
	}
	for _, a := range result.Artifacts {
		output.Warn("artifact left in place after failure", "path", a.TargetPath, "status", a.Status)
	}
}
