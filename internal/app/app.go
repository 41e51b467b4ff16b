package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pwmeter/internal/router"
	"github.com/abhisek/pwmeter/internal/screens/checker"
	"github.com/abhisek/pwmeter/internal/strength"
	"github.com/abhisek/pwmeter/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	// Handle must already be loaded; the shell never retries a failed load.
	Handle *strength.Handle

	// ModelName is shown in the header. Empty hides it.
	ModelName string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router    *router.Router
	modelName string
	width     int
	height    int
}

// newAppModel creates a new AppModel with the checker screen.
func newAppModel(opts Options) AppModel {
	return AppModel{
		router:    router.New(checker.New(opts.Handle)),
		modelName: opts.ModelName,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.modelName, m.width)

	fallback := []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	if m.router.Depth() > 1 {
		fallback = append([]layout.KeyHint{{Key: "Esc", Description: "Back"}}, fallback...)
	}
	footer := layout.RenderFooter(m.router.KeyHints(fallback), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Handle == nil {
		return fmt.Errorf("app: no strength handle")
	}
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
