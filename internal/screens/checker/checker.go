// Package checker implements the main screen: password entry, the live
// checklist and the strength verdict.
package checker

import (
	"errors"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pwmeter/internal/features"
	"github.com/abhisek/pwmeter/internal/router"
	"github.com/abhisek/pwmeter/internal/screen"
	"github.com/abhisek/pwmeter/internal/screens/charts"
	"github.com/abhisek/pwmeter/internal/strength"
	"github.com/abhisek/pwmeter/internal/ui/components"
	"github.com/abhisek/pwmeter/internal/ui/layout"
	"github.com/abhisek/pwmeter/internal/ui/theme"
)

const emptyWarning = "Please enter a password."

// Checker is the subset of *strength.Handle the screen needs.
type Checker interface {
	Check(password string) (strength.Result, error)
}

// CheckerScreen reads a password, keeps the checklist live on every
// keystroke and shows the classifier's verdict on Enter.
type CheckerScreen struct {
	checker   Checker
	input     components.PasswordInput
	checklist features.Checklist
	result    *strength.Result
	// checked is the checklist of the password behind result, which may
	// differ from the live input.
	checked   features.Checklist
	warning   string
	err       error
}

var _ screen.Screen = (*CheckerScreen)(nil)
var _ screen.KeyHintProvider = (*CheckerScreen)(nil)

// New creates a CheckerScreen backed by c.
func New(c Checker) *CheckerScreen {
	return &CheckerScreen{
		checker: c,
		input:   components.NewPasswordInput("password", 0),
	}
}

func (s *CheckerScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *CheckerScreen) Title() string {
	return "Password Strength Checker"
}

func (s *CheckerScreen) KeyHints() []layout.KeyHint {
	reveal := "Show"
	if s.input.Revealed() {
		reveal = "Hide"
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Check"},
		{Key: "Ctrl+T", Description: reveal},
	}
	if s.result != nil {
		hints = append(hints, layout.KeyHint{Key: "Tab", Description: "Charts"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

// Result returns the last verdict, or nil before the first check.
func (s *CheckerScreen) Result() *strength.Result {
	return s.result
}

func (s *CheckerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter":
			s.check()
			return s, nil
		case "ctrl+t":
			s.input.ToggleReveal()
			return s, nil
		case "tab":
			if s.result == nil {
				return s, nil
			}
			chartScreen := charts.New(*s.result, s.checked)
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: chartScreen} }
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.checklist = features.Criteria(s.input.Value())
	if s.input.Value() != "" {
		s.warning = ""
	}
	return s, cmd
}

func (s *CheckerScreen) check() {
	password := s.input.Value()
	if err := strength.ValidatePassword(password); err != nil {
		if errors.Is(err, strength.ErrEmptyPassword) {
			s.warning = emptyWarning
		} else {
			s.warning = err.Error()
		}
		return
	}

	res, err := s.checker.Check(password)
	if err != nil {
		s.err = err
		s.result = nil
		return
	}
	s.err = nil
	s.warning = ""
	s.result = &res
	s.checked = features.Criteria(password)
}

func (s *CheckerScreen) View(width, height int) string {
	contentWidth := layout.ContentWidth(width)
	var sections []string

	sections = append(sections, theme.Title.Render("Enter a Password:"))
	sections = append(sections, theme.Card.Width(contentWidth).Render(s.input.View()))

	if s.warning != "" {
		sections = append(sections, theme.Warning.Render("⚠ "+s.warning))
	}
	if s.err != nil {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Weak).Render("Error: "+s.err.Error()))
	}

	if s.result != nil {
		sections = append(sections, "", s.renderResult(contentWidth))
	}

	sections = append(sections, "",
		theme.Hint.Render("Requirements"),
		components.Checklist{Items: s.checklist.Items()}.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		lipgloss.NewStyle().Width(contentWidth).Render(content))
}

func (s *CheckerScreen) renderResult(width int) string {
	res := s.result
	c := LabelColor(res.Label)

	verdict := lipgloss.NewStyle().Bold(true).Foreground(c).
		Render("Password Strength: " + res.Label.String())

	meter := components.NewProgressBar("", res.Label.MeterPercent(), false, width)
	meter.Fill = c

	suggestions := theme.Body.Render(strength.Suggestions(res.Label))

	return strings.Join([]string{verdict, meter.View(), "", suggestions}, "\n")
}

// LabelColor returns the meter colour for l.
func LabelColor(l strength.Label) color.Color {
	switch l {
	case strength.LabelWeak:
		return theme.Weak
	case strength.LabelMedium:
		return theme.Medium
	default:
		return theme.Strong
	}
}
