package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abstractlab/yayi/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Busy is an optional interface for screens that must not be left while
// work is in flight. The app ignores Esc while Busy reports true.
type Busy interface {
	Busy() bool
}
