package templates

import "bytes"

// Renderer substitutes the placeholder with a class name.
type Renderer struct {
	placeholder []byte
	className   []byte
}

// NewRenderer creates a renderer that replaces Placeholder with className.
func NewRenderer(className string) *Renderer {
	return &Renderer{
		placeholder: []byte(Placeholder),
		className:   []byte(className),
	}
}

// RenderFile returns content with every literal occurrence of the placeholder
// replaced. The replacement is case-sensitive and single pass: text inserted
// for the class name is never rescanned.
func (r *Renderer) RenderFile(content []byte) []byte {
	return bytes.ReplaceAll(content, r.placeholder, r.className)
}

// Occurrences counts placeholder occurrences in content.
func (r *Renderer) Occurrences(content []byte) int {
	return bytes.Count(content, r.placeholder)
}
