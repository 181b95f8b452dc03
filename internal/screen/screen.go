package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/ayomide-cmd/folio/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the section name shown in the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Fullscreen is an optional interface for screens that draw the whole terminal
// themselves, without the header and footer chrome.
type Fullscreen interface {
	Fullscreen() bool
}
