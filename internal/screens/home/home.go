package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abstractlab/yayi/internal/flow"
	"github.com/abstractlab/yayi/internal/quiz"
	"github.com/abstractlab/yayi/internal/router"
	"github.com/abstractlab/yayi/internal/screen"
	"github.com/abstractlab/yayi/internal/screens/question"
	"github.com/abstractlab/yayi/internal/ui/components"
	"github.com/abstractlab/yayi/internal/ui/layout"
	"github.com/abstractlab/yayi/internal/ui/theme"
)

const (
	heading    = "ARE YOU REPRESSED?"
	tagline    = "Hunting for bottom-layer logic in the collapse of elitism.\nQuantify your repression and your workplace anxiety."
	disclaimer = "* Not a medical instrument. Purely an exchange in abstract art."
)

// HomeScreen is the start screen: pick a mode or quit.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(c *quiz.Catalog, ev *flow.Evaluator) *HomeScreen {
	items := make([]components.MenuItem, 0, len(quiz.AllModes())+1)
	for _, mode := range quiz.AllModes() {
		items = append(items, components.MenuItem{
			Label: mode.DisplayName(),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: question.New(c, ev, mode)}
				}
			},
			Disabled: len(c.Questions(mode)) == 0,
		})
	}
	items = append(items, components.MenuItem{
		Label:  "Quit",
		Action: func() tea.Cmd { return tea.Quit },
	})

	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := 44
	if width-4 < cw {
		cw = width - 4
	}

	sections := []string{
		theme.Title.Width(cw).Render(heading),
		theme.Subtitle.Width(cw).Render(tagline),
		h.menu.View(cw),
		theme.Hint.Width(cw).Align(lipgloss.Center).Render(disclaimer),
	}
	if layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight) {
		sections = []string{sections[0], sections[2], sections[3]}
	}

	return layout.Center(strings.Join(sections, "\n\n"), width, height)
}
