package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderer_RenderFile(t *testing.T) {
	tests := []struct {
		name      string
		className string
		input     string
		want      string
	}{
		{
			name:      "class declaration",
			className: "Widget",
			input:     "class ActiveModuleImpl { ActiveModuleImpl(); };",
			want:      "class Widget { Widget(); };",
		},
		{
			name:      "no placeholder",
			className: "Widget",
			input:     "int main() { return 0; }",
			want:      "int main() { return 0; }",
		},
		{
			name:      "no token awareness",
			className: "Widget",
			input:     "ActiveModuleImplFoo xActiveModuleImpl",
			want:      "WidgetFoo xWidget",
		},
		{
			name:      "case sensitive",
			className: "Widget",
			input:     "activemoduleimpl ACTIVEMODULEIMPL ActiveModuleImpl",
			want:      "activemoduleimpl ACTIVEMODULEIMPL Widget",
		},
		{
			name:      "class name containing placeholder is not rescanned",
			className: "ActiveModuleImplV2",
			input:     "ActiveModuleImpl::ActiveModuleImpl()",
			want:      "ActiveModuleImplV2::ActiveModuleImplV2()",
		},
		{
			name:      "regex metacharacters are literal",
			className: "$1.*",
			input:     "ActiveModuleImpl",
			want:      "$1.*",
		},
		{
			name:      "adjacent occurrences",
			className: "W",
			input:     "ActiveModuleImplActiveModuleImpl",
			want:      "WW",
		},
		{
			name:      "empty content",
			className: "Widget",
			input:     "",
			want:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRenderer(tt.className)
			assert.Equal(t, tt.want, string(r.RenderFile([]byte(tt.input))))
		})
	}
}

func TestRenderer_PreservesSurroundingBytes(t *testing.T) {
	input := []byte("\xef\xbb\xbf// ñ\r\nActiveModuleImpl\r\n\ttrailing  \n")
	want := []byte("\xef\xbb\xbf// ñ\r\nWidget\r\n\ttrailing  \n")

	r := NewRenderer("Widget")
	assert.Equal(t, want, r.RenderFile(input))
}

func TestRenderer_DoesNotMutateInput(t *testing.T) {
	input := []byte("ActiveModuleImpl")
	_ = NewRenderer("X").RenderFile(input)
	assert.Equal(t, "ActiveModuleImpl", string(input))
}

func TestRenderer_Occurrences(t *testing.T) {
	r := NewRenderer("Widget")
	assert.Equal(t, 0, r.Occurrences([]byte("nothing here")))
	assert.Equal(t, 3, r.Occurrences([]byte("ActiveModuleImpl::ActiveModuleImpl(\"ActiveModuleImpl\")")))
}
