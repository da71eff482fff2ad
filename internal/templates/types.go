// Package templates implements class generation from the ActiveModuleImpl
// template pair.
package templates

import "github.com/spf13/afero"

// Template represents one template file of the pair.
type Template struct {
	// Kind is the template identifier (header, source).
	Kind string

	// Extension is the file extension including the dot (".h", ".cpp").
	Extension string

	// Description explains what the generated file holds.
	Description string
}

// FileName returns the template file name, e.g. "ActiveModuleImpl.h".
func (t Template) FileName() string {
	return Placeholder + t.Extension
}

// ArtifactName returns the generated file name for className.
func (t Template) ArtifactName(className string) string {
	return className + t.Extension
}

// Artifact is a generated file.
type Artifact struct {
	// Template is the template the artifact was rendered from.
	Template Template

	// SourcePath is the template path that was read.
	SourcePath string

	// TargetPath is the destination path, <output>/<class>/<class><ext>.
	TargetPath string

	// RelPath is TargetPath relative to the class directory.
	RelPath string

	// Content is the rendered content.
	Content []byte

	// Status is "created" or "overwritten" once written.
	Status string
}

// GenerateOptions configures class generation.
type GenerateOptions struct {
	// ClassName replaces the placeholder and names the class directory.
	ClassName string

	// OutputPath is the directory the class directory is created in.
	OutputPath string

	// TemplateDir holds the template pair. Defaults to the working directory.
	TemplateDir string

	// Fs is the filesystem to read and write. Defaults to the OS filesystem.
	Fs afero.Fs
}

// GenerateResult contains the result of class generation.
type GenerateResult struct {
	// ClassName is the class that was generated.
	ClassName string

	// ClassDir is <output>/<class>.
	ClassDir string

	// Artifacts lists the written files in template order.
	Artifacts []Artifact

	// Failed is the artifact whose directory or file could not be written,
	// with status "failed". Nil on success.
	Failed *Artifact
}

// Files returns the artifact paths relative to the class directory.
func (r *GenerateResult) Files() []string {
	files := make([]string, 0, len(r.Artifacts))
	for _, a := range r.Artifacts {
		files = append(files, a.RelPath)
	}
	return files
}
