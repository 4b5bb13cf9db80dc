package question

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/abstractlab/yayi/internal/flow"
	"github.com/abstractlab/yayi/internal/quiz"
	"github.com/abstractlab/yayi/internal/router"
	"github.com/abstractlab/yayi/internal/screen"
	"github.com/abstractlab/yayi/internal/screens/result"
	"github.com/abstractlab/yayi/internal/ui/components"
	"github.com/abstractlab/yayi/internal/ui/layout"
	"github.com/abstractlab/yayi/internal/ui/theme"
)

var flavourLines = [...]string{
	"Syncing live rates from the Korla day-labour market",
	"Extracting aroma parameters from a 15-yuan box lunch",
}

// QuestionScreen walks through one questionnaire and runs the scoring and
// commentary step once the last answer is in.
type QuestionScreen struct {
	catalog   *quiz.Catalog
	evaluator *flow.Evaluator

	state   flow.State
	choice  components.MultiChoice
	spinner spinner.Model
	flavour string
	errMsg  string
}

var _ screen.Screen = (*QuestionScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionScreen)(nil)
var _ screen.Busy = (*QuestionScreen)(nil)

// New creates a QuestionScreen and starts a session in mode.
func New(c *quiz.Catalog, ev *flow.Evaluator, mode quiz.Mode) *QuestionScreen {
	s := &QuestionScreen{
		catalog:   c,
		evaluator: ev,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(theme.Selected),
		),
		flavour: flavourLines[rand.IntN(len(flavourLines))],
	}

	st, err := flow.New().Start(mode)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.state = st
	s.loadChoice()
	return s
}

func (s *QuestionScreen) Init() tea.Cmd {
	return nil
}

func (s *QuestionScreen) Title() string {
	return s.state.Mode.DisplayName()
}

func (s *QuestionScreen) KeyHints() []layout.KeyHint {
	if s.state.Phase == flow.PhaseLoading {
		return []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter/1-9", Description: "Answer"},
		{Key: "Esc", Description: "Home"},
	}
}

// State returns the current flow state.
func (s *QuestionScreen) State() flow.State {
	return s.state
}

func (s *QuestionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case evaluatedMsg:
		return s.handleEvaluated(msg)

	case spinner.TickMsg:
		if s.state.Phase != flow.PhaseLoading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		if s.state.Phase != flow.PhaseRunning {
			return s, nil
		}
		s.choice, _ = s.choice.Update(msg)
		if value, ok := s.choice.Chosen(); ok {
			return s.answer(value)
		}
	}
	return s, nil
}

func (s *QuestionScreen) answer(value int) (screen.Screen, tea.Cmd) {
	q, ok := s.state.CurrentQuestion(s.catalog)
	if !ok {
		return s, nil
	}

	next, last, err := s.state.Answer(s.catalog, q.ID, value)
	if err != nil {
		log.Printf("question: %v", err)
		s.loadChoice()
		return s, nil
	}
	s.state = next

	if !last {
		s.loadChoice()
		return s, nil
	}

	s.choice.Disabled = true
	return s, tea.Batch(s.spinner.Tick, s.evaluate(next))
}

func (s *QuestionScreen) evaluate(st flow.State) tea.Cmd {
	ev := s.evaluator
	return func() tea.Msg {
		return evaluatedMsg{
			SessionID: st.SessionID,
			Result:    ev.EvaluateState(context.Background(), st),
		}
	}
}

func (s *QuestionScreen) handleEvaluated(msg evaluatedMsg) (screen.Screen, tea.Cmd) {
	if msg.SessionID != s.state.SessionID {
		return s, nil
	}
	done, err := s.state.Complete(msg.Result)
	if err != nil {
		log.Printf("question: %v", err)
		return s, nil
	}
	s.state = done
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: result.New(done)}
	}
}

func (s *QuestionScreen) loadChoice() {
	q, ok := s.state.CurrentQuestion(s.catalog)
	if !ok {
		s.choice = components.MultiChoice{}
		return
	}
	s.choice = components.NewMultiChoice(q.Text, q.Choices())
}

func (s *QuestionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return layout.Center(theme.Body.Foreground(theme.Error).Render(s.errMsg), width, height)
	}
	if s.state.Phase == flow.PhaseLoading {
		return s.renderLoading(width, height)
	}

	q, ok := s.state.CurrentQuestion(s.catalog)
	if !ok {
		return renderWaiting(width, height)
	}
	return s.renderQuestion(q, width, height)
}

func (s *QuestionScreen) progressLabel() string {
	pos, total := s.state.Progress(s.catalog)
	return fmt.Sprintf("%d / %d", pos, total)
}

// Busy reports whether the evaluation step is in flight.
func (s *QuestionScreen) Busy() bool {
	return s.state.Phase == flow.PhaseLoading
}
