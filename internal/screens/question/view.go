package question

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abstractlab/yayi/internal/quiz"
	"github.com/abstractlab/yayi/internal/ui/components"
	"github.com/abstractlab/yayi/internal/ui/layout"
	"github.com/abstractlab/yayi/internal/ui/theme"
)

const footnote = "SUBURBAN FAILURE AESTHETICS LAB"

func contentWidth(width int) int {
	cw := 60
	if width-4 < cw {
		cw = width - 4
	}
	return cw
}

func (s *QuestionScreen) renderQuestion(q quiz.Question, width, height int) string {
	cw := contentWidth(width)
	pos, total := s.state.Progress(s.catalog)

	bar := components.NewProgressBar("", float64(pos-1)/float64(total), s.progressLabel(), cw).View()

	sections := []string{
		bar,
		s.choice.View(cw),
		theme.Mono.Width(cw).Align(lipgloss.Center).Render(footnote),
	}
	return layout.Center(strings.Join(sections, "\n\n"), width, height)
}

func (s *QuestionScreen) renderLoading(width, height int) string {
	cw := contentWidth(width)
	title := theme.Title.Width(cw).Render(s.spinner.View() + " DECONSTRUCTING BOTTOM-LAYER LOGIC...")
	line := theme.Body.Foreground(theme.Primary).Width(cw).Align(lipgloss.Center).Render(s.flavour)
	return layout.Center(title+"\n\n"+line, width, height)
}

func renderWaiting(width, height int) string {
	return layout.Center(theme.Hint.Render("Syncing data..."), width, height)
}
