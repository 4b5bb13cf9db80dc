package scoring

import (
	"testing"

	"github.com/abstractlab/yayi/internal/quiz"
)

const eps = 1e-9

func fill(qs []quiz.Question, v int) quiz.Answers {
	a := make(quiz.Answers, len(qs))
	for _, q := range qs {
		a[q.ID] = v
	}
	return a
}

func approx(a, b float64) bool {
	d := a - b
	return d < eps && d > -eps
}

func TestNormal_AllMinimum(t *testing.T) {
	c := quiz.Default()
	s := Score(quiz.ModeNormal, c, fill(c.Normal, 1))

	// 6 of a possible 18.
	if s.Overall != 33 {
		t.Errorf("overall: got %d, want 33", s.Overall)
	}
	if len(s.Factors) != 6 {
		t.Fatalf("got %d factors, want 6", len(s.Factors))
	}
	for _, f := range s.Factors {
		if !approx(f.Score, 100.0/3) {
			t.Errorf("factor %q: got %v, want %v", f.Dimension, f.Score, 100.0/3)
		}
	}
}

func TestNormal_AllMaximum(t *testing.T) {
	c := quiz.Default()
	s := Score(quiz.ModeNormal, c, fill(c.Normal, 3))
	if s.Overall != 100 {
		t.Errorf("overall: got %d, want 100", s.Overall)
	}
	for _, f := range s.Factors {
		if !approx(f.Score, 100) {
			t.Errorf("factor %q: got %v, want 100", f.Dimension, f.Score)
		}
	}
}

func TestNormal_Empty(t *testing.T) {
	c := quiz.Default()
	s := Score(quiz.ModeNormal, c, quiz.Answers{})
	if s.Overall != 0 {
		t.Errorf("overall: got %d, want 0", s.Overall)
	}
	for _, f := range s.Factors {
		if f.Score != 0 {
			t.Errorf("factor %q: got %v, want 0", f.Dimension, f.Score)
		}
	}
}

func TestNormal_FactorOrderFollowsCatalog(t *testing.T) {
	c := quiz.Default()
	s := Normal(c.Normal, fill(c.Normal, 2))
	for i, q := range c.Normal {
		if s.Factors[i].Dimension != q.Dimension {
			t.Errorf("factor %d: got %q, want %q", i, s.Factors[i].Dimension, q.Dimension)
		}
	}
}

func TestNormal_ClampedAt100(t *testing.T) {
	c := quiz.Default()
	// Out-of-range values are summed as-is; the overall still caps at 100.
	answers := fill(c.Normal, 9)
	s := Normal(c.Normal, answers)
	if s.Overall != 100 {
		t.Errorf("overall: got %d, want 100", s.Overall)
	}
	if !approx(s.Factors[0].Score, 300) {
		t.Errorf("factor: got %v, want 300", s.Factors[0].Score)
	}
}

func TestNormal_SharedDimensionLastWriteWins(t *testing.T) {
	qs := []quiz.Question{
		{ID: "a", Dimension: "X", Options: []string{"1", "2"}},
		{ID: "b", Dimension: "Y", Options: []string{"1", "2"}},
		{ID: "c", Dimension: "X", Options: []string{"1", "2"}},
	}
	s := Normal(qs, quiz.Answers{"a": 2, "b": 1, "c": 1})

	if len(s.Factors) != 2 {
		t.Fatalf("got %d factors, want 2", len(s.Factors))
	}
	if s.Factors[0].Dimension != "X" || !approx(s.Factors[0].Score, 50) {
		t.Errorf("X: got %+v, want score 50 in first position", s.Factors[0])
	}
	// 4 of 6.
	if s.Overall != 67 {
		t.Errorf("overall: got %d, want 67", s.Overall)
	}
}

func TestNormal_NoQuestions(t *testing.T) {
	s := Normal(nil, quiz.Answers{"x": 3})
	if s.Overall != 0 || len(s.Factors) != 0 {
		t.Errorf("got %+v, want zero scores", s)
	}
}

func TestDetailed_Uniform(t *testing.T) {
	c := quiz.Default()
	tests := []struct {
		value   int
		factor  float64
		overall int
	}{
		{1, 0, 0},
		{3, 50, 50},
		{5, 100, 100},
	}
	for _, tt := range tests {
		s := Score(quiz.ModeDetailed, c, fill(c.Detailed, tt.value))
		if s.Overall != tt.overall {
			t.Errorf("all %d: overall got %d, want %d", tt.value, s.Overall, tt.overall)
		}
		if len(s.Factors) != 9 {
			t.Fatalf("all %d: got %d factors, want 9", tt.value, len(s.Factors))
		}
		for _, f := range s.Factors {
			if !approx(f.Score, tt.factor) {
				t.Errorf("all %d: factor %q got %v, want %v", tt.value, f.Dimension, f.Score, tt.factor)
			}
		}
	}
}

func TestDetailed_EmptyGoesNegative(t *testing.T) {
	c := quiz.Default()
	s := Score(quiz.ModeDetailed, c, quiz.Answers{})
	if s.Overall != -25 {
		t.Errorf("overall: got %d, want -25", s.Overall)
	}
	for _, f := range s.Factors {
		if !approx(f.Score, -25) {
			t.Errorf("factor %q: got %v, want -25", f.Dimension, f.Score)
		}
	}
}

func TestDetailed_MixedDimensions(t *testing.T) {
	dims := []quiz.Dimension{
		{ID: "A", QuestionIDs: []string{"a1", "a2"}},
		{ID: "B", QuestionIDs: []string{"b1"}},
	}
	s := Detailed(dims, quiz.Answers{"a1": 2, "a2": 3, "b1": 5})

	// A: avg 2.5 -> 37.5; B: avg 5 -> 100; overall avg 3.75 -> 68.75 -> 69.
	m := s.FactorMap()
	if !approx(m["A"], 37.5) {
		t.Errorf("A: got %v, want 37.5", m["A"])
	}
	if !approx(m["B"], 100) {
		t.Errorf("B: got %v, want 100", m["B"])
	}
	if s.Overall != 69 {
		t.Errorf("overall: got %d, want 69", s.Overall)
	}
}

func TestDetailed_RoundsHalfUp(t *testing.T) {
	dims := []quiz.Dimension{{ID: "A", QuestionIDs: []string{"a1", "a2"}}}

	// avg 1.5 -> 12.5 -> 13
	s := Detailed(dims, quiz.Answers{"a1": 1, "a2": 2})
	if s.Overall != 13 {
		t.Errorf("overall: got %d, want 13", s.Overall)
	}
	// avg 0.5 -> -12.5 -> -12
	s = Detailed(dims, quiz.Answers{"a1": 1})
	if s.Overall != -12 {
		t.Errorf("overall: got %d, want -12", s.Overall)
	}
}

func TestDetailed_NoDimensions(t *testing.T) {
	s := Detailed(nil, quiz.Answers{"a": 5})
	if s.Overall != 0 || len(s.Factors) != 0 {
		t.Errorf("got %+v, want zero scores", s)
	}
}

func TestScore_UnknownMode(t *testing.T) {
	s := Score(quiz.Mode("bogus"), quiz.Default(), quiz.Answers{"n1": 3})
	if s.Overall != 0 || len(s.Factors) != 0 {
		t.Errorf("got %+v, want zero scores", s)
	}
}

func TestOverallNeverExceeds100(t *testing.T) {
	c := quiz.Default()
	for v := 0; v <= 10; v++ {
		for _, mode := range quiz.AllModes() {
			s := Score(mode, c, fill(c.Questions(mode), v))
			if s.Overall > 100 {
				t.Errorf("%s all %d: overall %d exceeds 100", mode, v, s.Overall)
			}
		}
	}
}

func TestRadar(t *testing.T) {
	c := quiz.Default()
	s := Score(quiz.ModeDetailed, c, fill(c.Detailed, 3))
	points := Radar(s)
	if len(points) != len(c.Dimensions) {
		t.Fatalf("got %d points, want %d", len(points), len(c.Dimensions))
	}
	for i, p := range points {
		if p.Subject != c.Dimensions[i].ID {
			t.Errorf("point %d: subject %q, want %q", i, p.Subject, c.Dimensions[i].ID)
		}
		if p.FullMark != 100 {
			t.Errorf("point %d: full mark %d, want 100", i, p.FullMark)
		}
		if !approx(p.Value, 50) {
			t.Errorf("point %d: value %v, want 50", i, p.Value)
		}
	}
}

func TestScores_Factor(t *testing.T) {
	s := Scores{Factors: []Factor{{Dimension: "A", Score: 12}}}
	if v, ok := s.Factor("A"); !ok || v != 12 {
		t.Errorf("Factor(A) = %v, %v", v, ok)
	}
	if _, ok := s.Factor("B"); ok {
		t.Error("Factor(B) should be absent")
	}
}
