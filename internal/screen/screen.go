package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathquiz/internal/ui/layout"
)

// Screen is one page of the terminal form: setup, question or summary.
type Screen interface {
	// Init returns an initial command when the screen is first shown.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is implemented by screens that supply their own footer
// key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is implemented by screens that show a status on the right
// of the header, e.g. question progress.
type StatusProvider interface {
	Status() string
}
