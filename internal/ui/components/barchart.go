package components

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pwmeter/internal/ui/theme"
)

// Bar is one row of a BarChart.
type Bar struct {
	Label string
	Value float64
	Color color.Color
}

// BarChart renders labelled horizontal bars scaled against Max.
type BarChart struct {
	Title  string
	Bars   []Bar
	Max    float64
	Width  int
	Format string // fmt verb for values, defaults to "%.2f"
}

// View renders the chart.
func (c BarChart) View() string {
	var b strings.Builder
	if c.Title != "" {
		b.WriteString(theme.Title.Render(c.Title))
		b.WriteString("\n")
	}

	labelWidth := 0
	for _, bar := range c.Bars {
		labelWidth = max(labelWidth, lipgloss.Width(bar.Label))
	}

	format := c.Format
	if format == "" {
		format = "%.2f"
	}
	values := make([]string, len(c.Bars))
	valueWidth := 0
	for i, bar := range c.Bars {
		values[i] = fmt.Sprintf(format, bar.Value)
		valueWidth = max(valueWidth, len(values[i]))
	}

	barWidth := c.Width - labelWidth - valueWidth - 4
	if barWidth < 4 {
		barWidth = 4
	}

	for i, bar := range c.Bars {
		n := 0
		if c.Max > 0 {
			n = int(math.Round(float64(barWidth) * bar.Value / c.Max))
		}
		n = max(0, min(n, barWidth))

		fill := bar.Color
		if fill == nil {
			fill = theme.Secondary
		}

		label := bar.Label + strings.Repeat(" ", labelWidth-lipgloss.Width(bar.Label))
		b.WriteString(theme.Body.Render(label))
		b.WriteString("  ")
		b.WriteString(lipgloss.NewStyle().Foreground(fill).Render(strings.Repeat("█", n)))
		b.WriteString(strings.Repeat(" ", barWidth-n))
		b.WriteString("  ")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(values[i]))
		if i < len(c.Bars)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
