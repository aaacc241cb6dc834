// Package styles defines the visual styling of run-mailcap's terminal
// output. Colors are adaptive and follow the terminal's light or dark theme.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	HeadingColor = lipgloss.AdaptiveColor{Light: "#1F4E79", Dark: "#7FB3E6"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#9A9A9A"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#B00020", Dark: "#FF6B6B"}
	CodeColor    = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#8BD58B"}
	PathColor    = lipgloss.AdaptiveColor{Light: "#6A1B9A", Dark: "#CE93D8"}
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(10)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	CodeStyle = lipgloss.NewStyle().
			Foreground(CodeColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor).
			Italic(true)
)
