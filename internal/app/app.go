package app

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abstractlab/yayi/internal/flow"
	"github.com/abstractlab/yayi/internal/quiz"
	"github.com/abstractlab/yayi/internal/router"
	"github.com/abstractlab/yayi/internal/screen"
	"github.com/abstractlab/yayi/internal/screens/home"
	"github.com/abstractlab/yayi/internal/ui/layout"
)

// Options holds dependencies for the app.
type Options struct {
	Catalog   *quiz.Catalog
	Evaluator *flow.Evaluator

	// Status is shown on the right of the header bar.
	Status string

	// DebugLog, when set, receives the standard logger's output.
	DebugLog string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	status string
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	return AppModel{
		router: router.New(home.New(opts.Catalog, opts.Evaluator)),
		status: opts.Status,
	}
}

func (m AppModel) Init() tea.Cmd {
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
			if b, ok := m.router.Active().(screen.Busy); ok && b.Busy() {
				return m, nil
			}
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

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.status, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program. The standard logger is silenced for
// the lifetime of the program unless a debug log is configured.
func Run(opts Options) error {
	if opts.DebugLog != "" {
		f, err := tea.LogToFile(opts.DebugLog, "yayi")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
		defer log.SetOutput(os.Stderr)
	}

	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
