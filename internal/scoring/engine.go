package scoring

import (
	"math"

	"github.com/abstractlab/yayi/internal/quiz"
)

// Score dispatches to the scorer for mode. Unknown modes score as empty.
func Score(mode quiz.Mode, c *quiz.Catalog, answers quiz.Answers) Scores {
	switch mode {
	case quiz.ModeNormal:
		return Normal(c.Normal, answers)
	case quiz.ModeDetailed:
		return Detailed(c.Dimensions, answers)
	default:
		return Scores{}
	}
}

// Normal scores a fixed-choice questionnaire.
//
// The overall score is the answer total normalised against the largest
// achievable total (question count times the largest option count). Each
// question's dimension gets its value normalised against the largest option
// count. Missing answers count as 0.
func Normal(questions []quiz.Question, answers quiz.Answers) Scores {
	sum := 0
	for _, v := range answers {
		sum += v
	}

	maxOption := quiz.MaxOptionValue(questions)
	maxSum := len(questions) * maxOption

	var out Scores
	if maxSum > 0 {
		out.Overall = clampTop(round(float64(sum) / float64(maxSum) * 100))
	}

	var factors factorList
	for _, q := range questions {
		score := 0.0
		if maxOption > 0 {
			score = float64(answers.Value(q.ID)) / float64(maxOption) * 100
		}
		factors.set(q.Dimension, score)
	}
	out.Factors = factors.items
	return out
}

// Detailed scores a Likert questionnaire grouped by dimension.
//
// Each factor maps the dimension's mean response from the 1..5 range onto
// 0..100. The overall score does the same for the mean of the dimension
// means. Missing answers count as 0, so incomplete sets go negative.
func Detailed(dims []quiz.Dimension, answers quiz.Answers) Scores {
	var out Scores
	if len(dims) == 0 {
		return out
	}

	var factors factorList
	totalAvg := 0.0
	for _, d := range dims {
		avg := 0.0
		if len(d.QuestionIDs) > 0 {
			sum := 0
			for _, id := range d.QuestionIDs {
				sum += answers.Value(id)
			}
			avg = float64(sum) / float64(len(d.QuestionIDs))
		}
		totalAvg += avg
		factors.set(d.ID, likertPercent(avg))
	}

	out.Overall = clampTop(round(likertPercent(totalAvg / float64(len(dims)))))
	out.Factors = factors.items
	return out
}

func likertPercent(avg float64) float64 {
	return (avg - quiz.LikertMin) / (quiz.LikertMax - quiz.LikertMin) * 100
}

// round rounds half-up toward positive infinity.
func round(x float64) int {
	return int(math.Floor(x + 0.5))
}

func clampTop(n int) int {
	if n > 100 {
		return 100
	}
	return n
}
