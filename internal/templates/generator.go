package templates

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	oerrors "github.com/opmodel/implgen/internal/errors"
	"github.com/opmodel/implgen/internal/output"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Generator generates a class from the template pair.
type Generator struct {
	opts GenerateOptions
	fs   afero.Fs
}

// NewGenerator creates a new generator with the given options.
func NewGenerator(opts GenerateOptions) *Generator {
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Generator{opts: opts, fs: fs}
}

// Generate creates <output>/<class>/<class>.h and .cpp using templates from the
// working directory and the OS filesystem.
func Generate(className, outputPath string) (*GenerateResult, error) {
	return NewGenerator(GenerateOptions{
		ClassName:  className,
		OutputPath: outputPath,
	}).Generate()
}

// Generate renders every template and writes the artifacts.
//
// All templates are read before anything is written, so a missing template
// leaves the filesystem untouched. Writes stop at the first failure and are not
// rolled back; the returned result then lists the artifacts written so far.
func (g *Generator) Generate() (*GenerateResult, error) {
	if err := ValidateOptions(g.opts); err != nil {
		return nil, err
	}

	templateDir, err := g.templateDir()
	if err != nil {
		return nil, err
	}

	classDir := filepath.Join(g.opts.OutputPath, g.opts.ClassName)
	log := output.ClassLogger(g.opts.ClassName)
	log.Debug("generating class",
		"templates", templateDir,
		"output", g.opts.OutputPath,
		"dir", classDir)

	renderer := NewRenderer(g.opts.ClassName)
	artifacts := make([]Artifact, 0, len(templates))
	for _, t := range List() {
		a, err := g.render(renderer, t, templateDir, classDir)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, a)
	}

	result := &GenerateResult{
		ClassName: g.opts.ClassName,
		ClassDir:  classDir,
		Artifacts: make([]Artifact, 0, len(artifacts)),
	}
	for _, a := range artifacts {
		if err := g.write(&a); err != nil {
			a.Status = output.StatusFailed
			result.Failed = &a
			return result, err
		}
		result.Artifacts = append(result.Artifacts, a)
	}

	return result, nil
}

func (g *Generator) templateDir() (string, error) {
	if g.opts.TemplateDir != "" {
		return g.opts.TemplateDir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", &oerrors.DetailError{
			Type:    "template read failed",
			Message: fmt.Sprintf("cannot determine working directory: %v", err),
			Cause:   oerrors.WrapCause(oerrors.ErrTemplateRead, err),
		}
	}
	return cwd, nil
}

// render reads one template and substitutes the placeholder.
func (g *Generator) render(r *Renderer, t Template, templateDir, classDir string) (Artifact, error) {
	log := output.ClassLogger(g.opts.ClassName)

	src := filepath.Join(templateDir, t.FileName())
	target := filepath.Join(classDir, t.ArtifactName(g.opts.ClassName))
	log.Debug("opening template", "path", src)
	log.Debug("opening artifact", "path", target)

	content, err := afero.ReadFile(g.fs, src)
	if err != nil {
		return Artifact{}, &oerrors.DetailError{
			Type:     "template read failed",
			Message:  fmt.Sprintf("cannot read %s template: %v", t.Kind, err),
			Location: src,
			Hint:     fmt.Sprintf("Run implgen from the directory that contains %s.", joinNames(FileNames())),
			Cause:    oerrors.WrapCause(oerrors.ErrTemplateRead, err),
		}
	}

	log.Debug("replacing placeholder",
		"placeholder", Placeholder,
		"with", g.opts.ClassName,
		"occurrences", r.Occurrences(content))

	return Artifact{
		Template:   t,
		SourcePath: src,
		TargetPath: target,
		RelPath:    t.ArtifactName(g.opts.ClassName),
		Content:    r.RenderFile(content),
	}, nil
}

// write ensures the artifact's directory exists and writes it, overwriting any
// existing file.
func (g *Generator) write(a *Artifact) error {
	log := output.ClassLogger(g.opts.ClassName)
	dir := filepath.Dir(a.TargetPath)

	if info, err := g.fs.Stat(dir); err != nil || !info.IsDir() {
		log.Debug("creating directory", "path", dir)
		if err := g.fs.MkdirAll(dir, dirPerm); err != nil {
			return &oerrors.DetailError{
				Type:     "directory create failed",
				Message:  fmt.Sprintf("cannot create directory: %v", err),
				Location: dir,
				Hint:     "Check that --path points to a writable location.",
				Cause:    oerrors.WrapCause(oerrors.ErrDirectoryCreate, err),
			}
		}
	}

	status := output.StatusCreated
	if _, err := g.fs.Stat(a.TargetPath); err == nil {
		status = output.StatusOverwritten
	}

	log.Info("saving artifact", "path", a.TargetPath, "status", status)
	if err := afero.WriteFile(g.fs, a.TargetPath, a.Content, filePerm); err != nil {
		return &oerrors.DetailError{
			Type:     "write failed",
			Message:  fmt.Sprintf("cannot write %s file: %v", a.Template.Kind, err),
			Location: a.TargetPath,
			Hint:     "Check permissions on the class directory.",
			Cause:    oerrors.WrapCause(oerrors.ErrWrite, err),
		}
	}

	a.Status = status
	return nil
}

func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	out := names[0]
	for _, n := range names[1 : len(names)-1] {
		out += ", " + n
	}
	return out + " and " + names[len(names)-1]
}
