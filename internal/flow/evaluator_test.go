package flow

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abstractlab/yayi/internal/commentary"
	"github.com/abstractlab/yayi/internal/llm"
	"github.com/abstractlab/yayi/internal/quiz"
	"github.com/abstractlab/yayi/internal/scoring"
)

type recordingCommentator struct {
	ctx    context.Context
	scores scoring.Scores
}

func (r *recordingCommentator) Request(ctx context.Context, _ quiz.Mode, s scoring.Scores) commentary.Commentary {
	r.ctx = ctx
	r.scores = s
	return commentary.Commentary{Text: "ok", Source: commentary.SourceGenerated}
}

func finish(t *testing.T, c *quiz.Catalog, mode quiz.Mode, value int) State {
	t.Helper()
	s, err := New().Start(mode)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	return runAll(t, c, s, value)
}

// Normal mode, every answer at the minimum option.
func TestScenario_NormalAllMinimum(t *testing.T) {
	c := quiz.Default()
	mock := llm.NewMockProvider(llm.MockResponse{Text: "roast"})
	ev := NewEvaluator(c, commentary.New(mock, commentary.DefaultConfig()))

	s := finish(t, c, quiz.ModeNormal, 1)
	res := ev.EvaluateState(context.Background(), s)

	if res.Scores.Overall != 33 {
		t.Errorf("overall = %d, want 33", res.Scores.Overall)
	}
	if res.Commentary.Text == "" {
		t.Error("commentary text must be present")
	}
	if got := len(res.Radar()); got != len(c.Normal) {
		t.Errorf("radar has %d points, want %d", got, len(c.Normal))
	}

	done, err := s.Complete(res)
	if err != nil || done.Phase != PhaseResult {
		t.Fatalf("complete: %v", err)
	}
}

// Detailed mode, every answer at the Likert midpoint.
func TestScenario_DetailedMidpoint(t *testing.T) {
	c := quiz.Default()
	ev := NewEvaluator(c, commentary.New(llm.NewMockProvider(llm.MockResponse{Text: "meh"}), commentary.DefaultConfig()))

	res := ev.EvaluateState(context.Background(), finish(t, c, quiz.ModeDetailed, 3))
	if res.Scores.Overall != 50 {
		t.Errorf("overall = %d, want 50", res.Scores.Overall)
	}
	if len(res.Scores.Factors) != 9 {
		t.Fatalf("got %d factors, want 9", len(res.Scores.Factors))
	}
	for _, f := range res.Scores.Factors {
		if f.Score != 50 {
			t.Errorf("factor %q = %v, want 50", f.Dimension, f.Score)
		}
	}
}

// The commentary service answers with HTTP 500.
func TestScenario_RemoteServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	p, err := llm.NewOpenAIProvider(llm.OpenAIConfig{APIKey: "k", Model: "gpt-3.5-turbo", BaseURL: server.URL + "/v1"}, 0)
	if err != nil {
		t.Fatalf("provider: %v", err)
	}
	c := quiz.Default()
	ev := NewEvaluator(c, commentary.New(p, commentary.DefaultConfig()))

	s := finish(t, c, quiz.ModeDetailed, 5)
	res := ev.EvaluateState(context.Background(), s)

	if res.Commentary.Text != commentary.FallbackRemote {
		t.Errorf("commentary = %q, want remote fallback", res.Commentary.Text)
	}
	if res.Scores.Overall != 100 {
		t.Errorf("overall = %d, want 100", res.Scores.Overall)
	}
	if _, err := s.Complete(res); err != nil {
		t.Fatalf("complete: %v", err)
	}
}

func TestEvaluate_NilCommentator(t *testing.T) {
	res := NewEvaluator(quiz.Default(), nil).Evaluate(context.Background(), quiz.ModeDetailed, quiz.Answers{})
	if res.Commentary.Source != commentary.SourceFallbackUnreachable {
		t.Errorf("source = %q", res.Commentary.Source)
	}
	if res.Scores.Overall != -25 {
		t.Errorf("overall = %d, want -25", res.Scores.Overall)
	}
}

func TestEvaluateState_TagsSession(t *testing.T) {
	c := quiz.Default()
	rc := &recordingCommentator{}
	s := finish(t, c, quiz.ModeNormal, 3)

	res := NewEvaluator(c, rc).EvaluateState(context.Background(), s)
	if got := llm.SessionFrom(rc.ctx); got != s.SessionID {
		t.Errorf("session = %q, want %q", got, s.SessionID)
	}
	if rc.scores.Overall != 100 || res.Mode != quiz.ModeNormal {
		t.Errorf("unexpected result %+v", res)
	}
}
