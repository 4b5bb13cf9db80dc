package quiz

// Catalog holds both questionnaires and the detailed-mode dimension mapping.
// Build one with NewCatalog so the structural invariants are checked.
type Catalog struct {
	Normal     []Question
	Detailed   []Question
	Dimensions []Dimension

	normalByID   map[string]Question
	detailedByID map[string]Question
}

// NewCatalog validates the given questionnaires and returns a Catalog.
func NewCatalog(normal, detailed []Question, dims []Dimension) (*Catalog, error) {
	if err := validateCatalog(normal, detailed, dims); err != nil {
		return nil, err
	}
	c := &Catalog{
		Normal:       normal,
		Detailed:     detailed,
		Dimensions:   dims,
		normalByID:   make(map[string]Question, len(normal)),
		detailedByID: make(map[string]Question, len(detailed)),
	}
	for _, q := range normal {
		c.normalByID[q.ID] = q
	}
	for _, q := range detailed {
		c.detailedByID[q.ID] = q
	}
	return c, nil
}

// Questions returns the ordered question list for mode.
func (c *Catalog) Questions(mode Mode) []Question {
	switch mode {
	case ModeNormal:
		return c.Normal
	case ModeDetailed:
		return c.Detailed
	default:
		return nil
	}
}

// Question looks up a question by ID within mode.
func (c *Catalog) Question(mode Mode, id string) (Question, bool) {
	var q Question
	var ok bool
	switch mode {
	case ModeNormal:
		q, ok = c.normalByID[id]
	case ModeDetailed:
		q, ok = c.detailedByID[id]
	}
	return q, ok
}

// MaxOptionValue returns the highest option value among normal-mode questions.
func (c *Catalog) MaxOptionValue() int {
	return MaxOptionValue(c.Normal)
}

// MaxOptionValue returns the largest option count in qs.
func MaxOptionValue(qs []Question) int {
	max := 0
	for _, q := range qs {
		if n := len(q.Options); n > max {
			max = n
		}
	}
	return max
}
