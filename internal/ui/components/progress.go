package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abstractlab/yayi/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label      string
	LabelWidth int // pads Label so stacked bars line up; 0 means natural width
	Percent    float64
	Value      string // shown after the bar; empty hides it
	Width      int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, value string, width int) ProgressBar {
	return ProgressBar{
		Label:   label,
		Percent: percent,
		Value:   value,
		Width:   width,
	}
}

// View renders the progress bar. Percent is clamped to [0, 1].
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if p.LabelWidth > 0 {
			style = style.Width(p.LabelWidth).MaxWidth(p.LabelWidth)
		}
		result += style.Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	valueWidth := 0
	if p.Value != "" {
		valueWidth = len(p.Value) + 2
	}

	barWidth := p.Width - labelWidth - valueWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", empty))

	if p.Value != "" {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %s", p.Value))
	}

	return result
}
