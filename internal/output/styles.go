package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for identifiable nouns: class names, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "created" artifact status.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "overwritten" artifact status.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for the "failed" artifact status.
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for tree chrome and descriptions.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (class names, paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleBold styles directory names and headings.
	StyleBold = lipgloss.NewStyle().Bold(true)

	// StyleMuted styles descriptions and structural chrome.
	StyleMuted = lipgloss.NewStyle().Foreground(ColorDimGray)

	// StyleCheck styles the completion checkmark.
	StyleCheck = lipgloss.NewStyle().Foreground(ColorGreenCheck)
)

// Artifact status values.
const (
	StatusCreated     = "created"
	StatusOverwritten = "overwritten"
	StatusFailed      = "failed"
)

// StatusStyle returns the style for an artifact status.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCreated:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusOverwritten:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// FormatCheckmark prefixes msg with a checkmark, green when styled.
func FormatCheckmark(styled bool, msg string) string {
	return Styled(styled, StyleCheck, "✔") + " " + msg
}

// Styled renders s with style when styled output is enabled and returns it
// unchanged otherwise.
func Styled(enabled bool, style lipgloss.Style, s string) string {
	if !enabled || s == "" {
		return s
	}
	return style.Render(s)
}
