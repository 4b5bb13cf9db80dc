package flow

import (
	"context"

	"github.com/abstractlab/yayi/internal/commentary"
	"github.com/abstractlab/yayi/internal/llm"
	"github.com/abstractlab/yayi/internal/quiz"
	"github.com/abstractlab/yayi/internal/scoring"
)

// Result is the outcome of a finished quiz.
type Result struct {
	Mode       quiz.Mode
	Scores     scoring.Scores
	Commentary commentary.Commentary
}

// Radar returns the chart points for the result.
func (r Result) Radar() []scoring.RadarPoint {
	return scoring.Radar(r.Scores)
}

// Commentator produces commentary for scores. *commentary.Requester
// satisfies it.
type Commentator interface {
	Request(ctx context.Context, mode quiz.Mode, scores scoring.Scores) commentary.Commentary
}

// Evaluator runs the score-then-commentary step at the end of a quiz.
type Evaluator struct {
	catalog     *quiz.Catalog
	commentator Commentator
}

// NewEvaluator creates an Evaluator. A nil commentator yields the
// unreachable fallback.
func NewEvaluator(c *quiz.Catalog, commentator Commentator) *Evaluator {
	return &Evaluator{catalog: c, commentator: commentator}
}

// Evaluate scores answers and requests commentary. It cannot fail.
func (e *Evaluator) Evaluate(ctx context.Context, mode quiz.Mode, answers quiz.Answers) Result {
	scores := scoring.Score(mode, e.catalog, answers)

	var c commentary.Commentary
	if e.commentator != nil {
		c = e.commentator.Request(ctx, mode, scores)
	} else {
		c = commentary.Commentary{
			Text:   commentary.FallbackUnreachable,
			Source: commentary.SourceFallbackUnreachable,
		}
	}

	return Result{Mode: mode, Scores: scores, Commentary: c}
}

// EvaluateState runs Evaluate for a loading state, tagging LLM calls with
// the session id.
func (e *Evaluator) EvaluateState(ctx context.Context, s State) Result {
	return e.Evaluate(llm.WithSession(ctx, s.SessionID), s.Mode, s.Answers)
}
