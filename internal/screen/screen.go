package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lessonloop/internal/ui/layout"
)

// Screen is the body of the window. The app model draws the header and
// footer around whatever View returns.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints, which
// only mention quitting.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
