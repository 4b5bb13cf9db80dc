package quiz

import "fmt"

// Mode selects which questionnaire variant is being taken.
type Mode string

const (
	ModeNormal   Mode = "normal"
	ModeDetailed Mode = "detailed"
)

// AllModes returns all modes in display order.
func AllModes() []Mode {
	return []Mode{ModeNormal, ModeDetailed}
}

// ParseMode converts a user-supplied string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeNormal, ModeDetailed:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown quiz mode %q: must be normal or detailed", s)
	}
}

// DisplayName returns the short name shown on the start screen.
func (m Mode) DisplayName() string {
	switch m {
	case ModeNormal:
		return "Normal: 1-minute speed test"
	case ModeDetailed:
		return "Detailed: SCL-90 hardcore analysis"
	default:
		return string(m)
	}
}

// PromptLabel returns the mode label embedded in the commentary prompt.
func (m Mode) PromptLabel() string {
	switch m {
	case ModeNormal:
		return "normal (meme mode)"
	case ModeDetailed:
		return "detailed (SCL-90 hardcore mode)"
	default:
		return string(m)
	}
}
