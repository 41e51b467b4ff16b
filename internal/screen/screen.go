// Package screen defines the contract between the app shell and the
// individual pwmeter views.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pwmeter/internal/ui/layout"
)

// Screen is one view on the router stack. The app shell owns the header and
// footer; a screen renders only the body.
type Screen interface {
	Init() tea.Cmd

	// Update handles a message and returns the screen that should stay on
	// the stack in its place.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body within width x height cells.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider is implemented by screens that want their own footer hints
// instead of the shell defaults.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
