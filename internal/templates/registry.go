package templates

import "fmt"

// Placeholder is the class name embedded in the templates. It also forms the
// template file base name.
const Placeholder = "ActiveModuleImpl"

// Template kinds.
const (
	KindHeader = "header"
	KindSource = "source"
)

// templates is the ordered template pair. The header is processed first.
var templates = []Template{
	{
		Kind:        KindHeader,
		Extension:   ".h",
		Description: "Class declaration",
	},
	{
		Kind:        KindSource,
		Extension:   ".cpp",
		Description: "Class implementation",
	},
}

// List returns the templates in processing order.
func List() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

// Get returns a template by kind.
func Get(kind string) (Template, error) {
	for _, t := range templates {
		if t.Kind == kind {
			return t, nil
		}
	}
	return Template{}, fmt.Errorf("unknown template %q; valid templates: %s, %s", kind, KindHeader, KindSource)
}

// Extensions returns the template extensions in processing order.
func Extensions() []string {
	exts := make([]string, 0, len(templates))
	for _, t := range templates {
		exts = append(exts, t.Extension)
	}
	return exts
}

// FileNames returns the template file names in processing order.
func FileNames() []string {
	names := make([]string, 0, len(templates))
	for _, t := range templates {
		names = append(names, t.FileName())
	}
	return names
}
