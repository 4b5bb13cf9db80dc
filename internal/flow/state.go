// Package flow drives one pass through a questionnaire: start, answer
// each question in order, score, and show the result.
package flow

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/abstractlab/yayi/internal/quiz"
)

// Phase is the coarse position of a session.
type Phase int

const (
	PhaseHome Phase = iota
	PhaseRunning
	PhaseLoading
	PhaseResult
)

func (p Phase) String() string {
	switch p {
	case PhaseHome:
		return "home"
	case PhaseRunning:
		return "running"
	case PhaseLoading:
		return "loading"
	case PhaseResult:
		return "result"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

var (
	// ErrInvalidTransition is returned when an operation is not allowed in
	// the current phase.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrUnexpectedQuestion is returned when an answer targets a question
	// other than the current one.
	ErrUnexpectedQuestion = errors.New("answer is not for the current question")

	// ErrInvalidAnswer is returned when a value is outside the question's range.
	ErrInvalidAnswer = errors.New("answer value out of range")
)

// State is an immutable snapshot of a quiz session. Transitions return a
// new State and leave the receiver untouched.
type State struct {
	Phase     Phase
	Mode      quiz.Mode
	Index     int
	Answers   quiz.Answers
	Result    *Result
	SessionID string
}

// New returns the initial home state.
func New() State {
	return State{Phase: PhaseHome, Answers: quiz.Answers{}}
}

// Start begins a quiz in mode. Only valid from home.
func (s State) Start(mode quiz.Mode) (State, error) {
	if s.Phase != PhaseHome {
		return s, fmt.Errorf("start from %s: %w", s.Phase, ErrInvalidTransition)
	}
	if _, err := quiz.ParseMode(string(mode)); err != nil {
		return s, err
	}
	return State{
		Phase:     PhaseRunning,
		Mode:      mode,
		Answers:   quiz.Answers{},
		SessionID: uuid.NewString(),
	}, nil
}

// Answer records value for the current question. The returned bool is true
// when that was the last question; the state is then loading and the
// caller should run the evaluation step.
func (s State) Answer(c *quiz.Catalog, questionID string, value int) (State, bool, error) {
	if s.Phase != PhaseRunning {
		return s, false, fmt.Errorf("answer in %s: %w", s.Phase, ErrInvalidTransition)
	}
	q, ok := s.CurrentQuestion(c)
	if !ok || q.ID != questionID {
		return s, false, fmt.Errorf("question %q: %w", questionID, ErrUnexpectedQuestion)
	}
	if !q.Accepts(value) {
		return s, false, fmt.Errorf("question %q value %d (want 1..%d): %w",
			questionID, value, q.MaxValue(), ErrInvalidAnswer)
	}

	next := s
	next.Answers = s.Answers.Clone()
	next.Answers[questionID] = value
	next.Index = s.Index + 1

	last := s.Index == len(c.Questions(s.Mode))-1
	if last {
		next.Phase = PhaseLoading
	}
	return next, last, nil
}

// Complete stores the evaluation result. Only valid while loading.
func (s State) Complete(r Result) (State, error) {
	if s.Phase != PhaseLoading {
		return s, fmt.Errorf("complete from %s: %w", s.Phase, ErrInvalidTransition)
	}
	next := s
	next.Phase = PhaseResult
	next.Result = &r
	return next, nil
}

// Reset returns to the initial home state from any phase.
func (s State) Reset() State {
	return New()
}

// CurrentQuestion returns the question at Index. It reports false when the
// index is past the end, which is normal while loading.
func (s State) CurrentQuestion(c *quiz.Catalog) (quiz.Question, bool) {
	qs := c.Questions(s.Mode)
	if s.Index < 0 || s.Index >= len(qs) {
		return quiz.Question{}, false
	}
	return qs[s.Index], true
}

// Progress returns the 1-based position of the current question and the
// total. While loading the position is clamped to the total.
func (s State) Progress(c *quiz.Catalog) (pos, total int) {
	total = len(c.Questions(s.Mode))
	pos = s.Index + 1
	if pos > total {
		pos = total
	}
	return pos, total
}
