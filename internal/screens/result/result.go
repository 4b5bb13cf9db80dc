package result

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abstractlab/yayi/internal/commentary"
	"github.com/abstractlab/yayi/internal/flow"
	"github.com/abstractlab/yayi/internal/router"
	"github.com/abstractlab/yayi/internal/scoring"
	"github.com/abstractlab/yayi/internal/screen"
	"github.com/abstractlab/yayi/internal/ui/components"
	"github.com/abstractlab/yayi/internal/ui/layout"
	"github.com/abstractlab/yayi/internal/ui/theme"
)

// ResultScreen shows the suppression report for a finished session.
type ResultScreen struct {
	state flow.State
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen. st should be in the result phase.
func New(st flow.State) *ResultScreen {
	return &ResultScreen{state: st}
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	return "Suppression Report"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Re-examine the bottom-layer logic"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "r":
			s.state = s.state.Reset()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ResultScreen) View(width, height int) string {
	res := s.state.Result
	if res == nil {
		return layout.Center(theme.Hint.Render("Syncing data..."), width, height)
	}

	cw := 64
	if width-4 < cw {
		cw = width - 4
	}

	sections := []string{renderHeadline(res.Scores.Overall, cw)}
	if radar := res.Radar(); len(radar) > 0 {
		sections = append(sections, renderFactors(radar, cw))
	}
	sections = append(sections, renderCommentary(res.Commentary, cw))

	return layout.Center(strings.Join(sections, "\n\n"), width, height)
}

func renderHeadline(overall, width int) string {
	kicker := lipgloss.NewStyle().Foreground(theme.Primary).Render("QUANTIFIED SUPPRESSION REPORT")
	label := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Repression index")
	score := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(fmt.Sprintf("%d", overall))

	gap := width - lipgloss.Width(label) - lipgloss.Width(score)
	if gap < 1 {
		gap = 1
	}
	line := label + strings.Repeat(" ", gap) + score

	rule := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width))
	return kicker + "\n" + line + "\n" + rule
}

func renderFactors(points []scoring.RadarPoint, width int) string {
	labelWidth := 0
	for _, p := range points {
		if w := lipgloss.Width(p.Subject); w > labelWidth {
			labelWidth = w
		}
	}
	if limit := width / 2; labelWidth > limit {
		labelWidth = limit
	}

	inner := width - 4
	rows := make([]string, 0, len(points)+1)
	rows = append(rows, theme.Subtitle.Width(inner).Render("SYSTEM DEFENCE FACTORS"))
	for _, p := range points {
		bar := components.ProgressBar{
			Label:      p.Subject,
			LabelWidth: labelWidth,
			Percent:    p.Value / float64(p.FullMark),
			Value:      fmt.Sprintf("%5.1f", p.Value),
			Width:      inner,
		}
		rows = append(rows, bar.View())
	}
	return theme.Card.Width(width).Render(strings.Join(rows, "\n"))
}

func renderCommentary(c commentary.Commentary, width int) string {
	heading := lipgloss.NewStyle().Bold(true).Render("THE PHILOSOPHER'S POISON-TONGUE REVIEW")
	body := c.Text
	if c.Source != commentary.SourceGenerated {
		body += "\n\n" + lipgloss.NewStyle().Italic(true).Render("(offline verdict)")
	}
	return theme.RoastCard.Width(width).Render(heading + "\n\n" + body)
}
