package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: dark report paper with an orange highlighter
var (
	Primary   = lipgloss.Color("#F97316") // Orange
	Secondary = lipgloss.Color("#FB923C") // Light orange
	Accent    = lipgloss.Color("#FACC15") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F5F5F5") // Off-white
	TextDim   = lipgloss.Color("#737373") // Neutral grey
	TextInk   = lipgloss.Color("#0A0A0A") // Black, for text on orange
	BgDark    = lipgloss.Color("#1A1A1A") // Charcoal
	BgCard    = lipgloss.Color("#262626") // Dark grey
	Border    = lipgloss.Color("#404040") // Grey
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Mono = lipgloss.NewStyle().
		Foreground(TextDim)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	// RoastCard is the orange commentary note on the result screen.
	RoastCard = lipgloss.NewStyle().
			Background(Primary).
			Foreground(TextInk).
			Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Primary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(TextInk).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(Primary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 2)
)
