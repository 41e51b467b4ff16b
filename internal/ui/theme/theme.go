package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary   = lipgloss.Color("#3B82F6") // Blue
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate

	// Strength colours, mirrored by the meter and the charts.
	Weak   = lipgloss.Color("#EF4444") // Red
	Medium = lipgloss.Color("#F97316") // Orange
	Strong = lipgloss.Color("#22C55E") // Green
)

// Pass and Fail colour checklist items and criteria bars.
var (
	Pass = Strong
	Fail = Weak
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Warning = lipgloss.NewStyle().
		Foreground(Medium).
		Bold(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
)

// Components
var (
	ProgressEmpty = lipgloss.NewStyle().
		Background(Border)
)

// MetColor returns Pass or Fail.
func MetColor(met bool) color.Color {
	if met {
		return Pass
	}
	return Fail
}
