// Package charts renders the probability and criteria bar charts for a
// completed strength check.
package charts

import (
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pwmeter/internal/features"
	"github.com/abhisek/pwmeter/internal/router"
	"github.com/abhisek/pwmeter/internal/screen"
	"github.com/abhisek/pwmeter/internal/strength"
	"github.com/abhisek/pwmeter/internal/ui/components"
	"github.com/abhisek/pwmeter/internal/ui/layout"
	"github.com/abhisek/pwmeter/internal/ui/theme"
)

// ChartsScreen shows three charts for one result.
type ChartsScreen struct {
	result    strength.Result
	checklist features.Checklist
}

var _ screen.Screen = (*ChartsScreen)(nil)
var _ screen.KeyHintProvider = (*ChartsScreen)(nil)

// New creates a ChartsScreen. checklist supplies the upper/lower-case
// criteria, which the classifier features do not carry.
func New(result strength.Result, checklist features.Checklist) *ChartsScreen {
	return &ChartsScreen{result: result, checklist: checklist}
}

func (c *ChartsScreen) Init() tea.Cmd {
	return nil
}

func (c *ChartsScreen) Title() string {
	return "Strength Charts"
}

func (c *ChartsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (c *ChartsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "q", "tab", "enter":
			return c, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return c, nil
}

func (c *ChartsScreen) View(width, height int) string {
	chartWidth := layout.ContentWidth(width)
	sections := []string{
		c.ProbabilityChart(chartWidth).View(),
		c.CriteriaChart(chartWidth).View(),
		c.CharacterChart(chartWidth).View(),
	}
	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}

// ProbabilityChart plots the class probabilities.
func (c *ChartsScreen) ProbabilityChart(width int) components.BarChart {
	colors := []color.Color{theme.Weak, theme.Medium, theme.Strong}
	bars := make([]components.Bar, 0, strength.NumLabels)
	for i, l := range strength.AllLabels() {
		bars = append(bars, components.Bar{
			Label: l.String(),
			Value: c.result.Probability(l),
			Color: colors[i],
		})
	}
	return components.BarChart{
		Title: "Password Strength Prediction Probabilities",
		Bars:  bars,
		Max:   1,
		Width: width,
	}
}

// CriteriaChart plots the pass/fail state of the classifier features.
func (c *ChartsScreen) CriteriaChart(width int) components.BarChart {
	breakdown := c.result.Features.Breakdown()
	bars := make([]components.Bar, 0, len(breakdown))
	for _, cr := range breakdown {
		bars = append(bars, metBar(cr.Name, cr.Met))
	}
	return components.BarChart{
		Title:  "Password Criteria Breakdown",
		Bars:   bars,
		Max:    1,
		Width:  width,
		Format: "%.0f",
	}
}

// CharacterChart plots raw length next to the character-class checks. The
// scale grows with long passwords but never drops below 12.
func (c *ChartsScreen) CharacterChart(width int) components.BarChart {
	length := c.result.Features.Length
	return components.BarChart{
		Title: "Detailed Character Criteria Analysis",
		Bars: []components.Bar{
			{Label: "Length of Characters", Value: float64(length), Color: theme.MetColor(length > 0)},
			metBar("Contains Uppercase Letters", c.checklist.Uppercase),
			metBar("Contains Lowercase Letters", c.checklist.Lowercase),
			metBar("Contains Digit", c.result.Features.HasDigits),
			metBar("Contains Special Character", c.result.Features.HasSpecialSymbols),
		},
		Max:    float64(max(features.RecommendedLength, length)),
		Width:  width,
		Format: "%.0f",
	}
}

func metBar(label string, met bool) components.Bar {
	v := 0.0
	if met {
		v = 1
	}
	return components.Bar{Label: label, Value: v, Color: theme.MetColor(met)}
}
