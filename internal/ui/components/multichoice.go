package components

import (
	"fmt"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abstractlab/yayi/internal/ui/theme"
)

// MultiChoice is a single-pick list of numbered options. Values are
// 1-based: picking the first option yields 1.
type MultiChoice struct {
	Question string
	Options  []string
	Selected int
	Disabled bool

	chosen int
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(question string, options []string) MultiChoice {
	return MultiChoice{
		Question: question,
		Options:  options,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles arrow navigation, Enter, and the digit shortcuts 1..9.
// Input is dropped while Disabled or once a value has been chosen.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Disabled || m.chosen > 0 {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter", "space":
		if len(m.Options) > 0 {
			m.chosen = m.Selected + 1
		}
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.Options) {
			m.Selected = n - 1
			m.chosen = n
		}
	}

	return m, nil
}

// Chosen returns the picked value and whether one has been picked.
func (m MultiChoice) Chosen() (int, bool) {
	return m.chosen, m.chosen > 0
}

// View renders the question and its options.
func (m MultiChoice) View(width int) string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(width)
	s := questionStyle.Render(m.Question) + "\n\n"

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Disabled {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%02d  %s", prefix, i+1, opt)

		switch {
		case m.Disabled:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == m.Selected:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
