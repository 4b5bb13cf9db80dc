package quiz

// Likert scale bounds shared by every detailed-mode question.
const (
	LikertMin = 1
	LikertMax = 5
)

// LikertLabels are the severity labels for values LikertMin..LikertMax.
var LikertLabels = [LikertMax]string{
	"Not at all",
	"A little",
	"Moderately",
	"Quite a bit",
	"Extremely",
}

// Question is a single questionnaire item.
type Question struct {
	ID        string   `json:"id"`
	Text      string   `json:"text"`
	Dimension string   `json:"dimension"`
	Options   []string `json:"options,omitempty"` // normal mode only
}

// Choices returns the labels the user picks from. Questions without their
// own options use the Likert scale.
func (q Question) Choices() []string {
	if len(q.Options) > 0 {
		return q.Options
	}
	return LikertLabels[:]
}

// MaxValue is the highest value a response to q may take.
func (q Question) MaxValue() int {
	return len(q.Choices())
}

// Accepts reports whether value is a valid response to q.
func (q Question) Accepts(value int) bool {
	return value >= 1 && value <= q.MaxValue()
}

// Dimension groups detailed-mode questions into one factor.
type Dimension struct {
	ID          string   `json:"id"`
	QuestionIDs []string `json:"questionIds"`
}

// Answers maps question ID to the recorded response value.
// A missing entry means the question was not answered.
type Answers map[string]int

// Value returns the recorded value for id, or 0 if unanswered.
func (a Answers) Value(id string) int {
	return a[id]
}

// Clone returns an independent copy of a.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
