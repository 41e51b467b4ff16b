package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// PasswordInput wraps bubbles/textinput with masking that can be toggled.
type PasswordInput struct {
	Model    textinput.Model
	revealed bool
}

// NewPasswordInput creates a focused, masked input. A charLimit of 0 accepts
// input of any length.
func NewPasswordInput(placeholder string, charLimit int) PasswordInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '*'
	ti.CharLimit = charLimit
	ti.Focus()

	return PasswordInput{Model: ti}
}

// Init returns the initial command.
func (p PasswordInput) Init() tea.Cmd {
	return p.Model.Focus()
}

// Update handles messages.
func (p PasswordInput) Update(msg tea.Msg) (PasswordInput, tea.Cmd) {
	var cmd tea.Cmd
	p.Model, cmd = p.Model.Update(msg)
	return p, cmd
}

// View renders the input.
func (p PasswordInput) View() string {
	return p.Model.View()
}

// Value returns the current input value.
func (p PasswordInput) Value() string {
	return p.Model.Value()
}

// Revealed reports whether the password is shown in clear text.
func (p PasswordInput) Revealed() bool {
	return p.revealed
}

// ToggleReveal switches between masked and clear text.
func (p *PasswordInput) ToggleReveal() {
	p.revealed = !p.revealed
	if p.revealed {
		p.Model.EchoMode = textinput.EchoNormal
	} else {
		p.Model.EchoMode = textinput.EchoPassword
	}
}
