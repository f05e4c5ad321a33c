package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lessonloop/internal/ui/theme"
)

// Button triggers OnPress on Enter while Active. When inactive it shows
// BusyLabel, if set, in place of Label.
type Button struct {
	Label     string
	BusyLabel string
	Active    bool
	OnPress   func() tea.Cmd
}

// NewButton creates a button.
func NewButton(label string, active bool, onPress func() tea.Cmd) Button {
	return Button{Label: label, Active: active, OnPress: onPress}
}

func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !b.Active || b.OnPress == nil {
		return b, nil
	}
	if kmsg.String() == "enter" {
		return b, b.OnPress()
	}
	return b, nil
}

func (b Button) View() string {
	if b.Active {
		return theme.ButtonActive.Render("▸ " + b.Label)
	}
	label := b.Label
	if b.BusyLabel != "" {
		label = b.BusyLabel
	}
	return theme.ButtonInactive.Render(label)
}
