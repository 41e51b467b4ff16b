package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pwmeter/internal/features"
	"github.com/abhisek/pwmeter/internal/ui/theme"
)

// Checklist renders pass/fail criteria, one per line.
type Checklist struct {
	Items []features.Criterion
}

// View renders the checklist.
func (c Checklist) View() string {
	lines := make([]string, 0, len(c.Items))
	for _, item := range c.Items {
		mark := "✗"
		if item.Met {
			mark = "✓"
		}
		style := lipgloss.NewStyle().Foreground(theme.MetColor(item.Met))
		lines = append(lines, style.Render(mark+" "+item.Name))
	}
	return strings.Join(lines, "\n")
}
