// Package scoring turns a completed answer set into an overall score and
// per-dimension factor scores. Everything here is pure.
package scoring

// FullMark is the upper bound of every radar axis.
const FullMark = 100

// Factor is the score for one dimension.
type Factor struct {
	Dimension string  `json:"dimension"`
	Score     float64 `json:"score"`
}

// Scores is the outcome of scoring one answer set.
// Overall is clamped to at most 100 and is never floored.
type Scores struct {
	Overall int      `json:"overallScore"`
	Factors []Factor `json:"factorScores"`
}

// FactorMap returns the factor scores keyed by dimension.
func (s Scores) FactorMap() map[string]float64 {
	m := make(map[string]float64, len(s.Factors))
	for _, f := range s.Factors {
		m[f.Dimension] = f.Score
	}
	return m
}

// Factor returns the score for dimension and whether it was present.
func (s Scores) Factor(dimension string) (float64, bool) {
	for _, f := range s.Factors {
		if f.Dimension == dimension {
			return f.Score, true
		}
	}
	return 0, false
}

// RadarPoint is one axis of the result chart.
type RadarPoint struct {
	Subject  string  `json:"subject"`
	Value    float64 `json:"A"`
	FullMark int     `json:"fullMark"`
}

// Radar returns one point per dimension in factor order.
func Radar(s Scores) []RadarPoint {
	points := make([]RadarPoint, 0, len(s.Factors))
	for _, f := range s.Factors {
		points = append(points, RadarPoint{
			Subject:  f.Dimension,
			Value:    f.Score,
			FullMark: FullMark,
		})
	}
	return points
}

// factorList keeps factors in first-insertion order; a repeated dimension
// overwrites the score in place.
type factorList struct {
	items []Factor
	index map[string]int
}

func (l *factorList) set(dimension string, score float64) {
	if l.index == nil {
		l.index = make(map[string]int)
	}
	if i, ok := l.index[dimension]; ok {
		l.items[i].Score = score
		return
	}
	l.index[dimension] = len(l.items)
	l.items = append(l.items, Factor{Dimension: dimension, Score: score})
}
