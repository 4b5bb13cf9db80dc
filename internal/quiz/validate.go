package quiz

import (
	"fmt"
	"strings"
)

// validateCatalog performs all structural checks on a questionnaire pair.
// Returns a combined error describing all problems found, or nil if valid.
func validateCatalog(normal, detailed []Question, dims []Dimension) error {
	var errs []string

	if len(normal) == 0 {
		errs = append(errs, "normal questionnaire is empty")
	}
	if len(detailed) == 0 {
		errs = append(errs, "detailed questionnaire is empty")
	}
	if len(dims) == 0 {
		errs = append(errs, "dimension mapping is empty")
	}

	// IDs are unique across both questionnaires.
	seen := make(map[string]bool, len(normal)+len(detailed))
	for _, q := range append(append([]Question(nil), normal...), detailed...) {
		if q.ID == "" {
			errs = append(errs, fmt.Sprintf("question with text %q has empty ID", q.Text))
			continue
		}
		if seen[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		seen[q.ID] = true
		if q.Dimension == "" {
			errs = append(errs, fmt.Sprintf("question %q has no dimension", q.ID))
		}
	}

	// Normal questions carry their own options, one question per dimension.
	normalDims := make(map[string]string, len(normal))
	for _, q := range normal {
		if len(q.Options) < 2 {
			errs = append(errs, fmt.Sprintf("normal question %q needs at least 2 options, got %d", q.ID, len(q.Options)))
		}
		if prev, ok := normalDims[q.Dimension]; ok && q.Dimension != "" {
			errs = append(errs, fmt.Sprintf("normal questions %q and %q share dimension %q", prev, q.ID, q.Dimension))
		}
		normalDims[q.Dimension] = q.ID
	}

	// Detailed questions use the shared Likert scale.
	detailedByID := make(map[string]Question, len(detailed))
	for _, q := range detailed {
		if len(q.Options) > 0 {
			errs = append(errs, fmt.Sprintf("detailed question %q must not define options", q.ID))
		}
		detailedByID[q.ID] = q
	}

	// Dimension lists are non-empty, disjoint, and cover the detailed set.
	owner := make(map[string]string, len(detailed))
	dimSeen := make(map[string]bool, len(dims))
	for _, d := range dims {
		if d.ID == "" {
			errs = append(errs, "dimension with empty ID")
		}
		if dimSeen[d.ID] {
			errs = append(errs, fmt.Sprintf("duplicate dimension ID: %q", d.ID))
		}
		dimSeen[d.ID] = true
		if len(d.QuestionIDs) == 0 {
			errs = append(errs, fmt.Sprintf("dimension %q has no questions", d.ID))
		}
		for _, qid := range d.QuestionIDs {
			q, ok := detailedByID[qid]
			if !ok {
				errs = append(errs, fmt.Sprintf("dimension %q references unknown detailed question %q", d.ID, qid))
				continue
			}
			if prev, ok := owner[qid]; ok {
				errs = append(errs, fmt.Sprintf("question %q listed in both %q and %q", qid, prev, d.ID))
				continue
			}
			owner[qid] = d.ID
			if q.Dimension != d.ID {
				errs = append(errs, fmt.Sprintf("question %q is tagged %q but listed under %q", qid, q.Dimension, d.ID))
			}
		}
	}
	for _, q := range detailed {
		if _, ok := owner[q.ID]; !ok {
			errs = append(errs, fmt.Sprintf("detailed question %q is not in any dimension", q.ID))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
