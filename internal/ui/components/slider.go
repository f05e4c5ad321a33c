package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lessonloop/internal/ui/theme"
)

// Slider picks an integer in [Min, Max] with the arrow keys.
type Slider struct {
	Label    string
	Min, Max int
	Value    int
	focused  bool
}

// NewSlider creates a slider. value is clamped into range.
func NewSlider(label string, lo, hi, value int) Slider {
	s := Slider{Label: label, Min: lo, Max: hi}
	s.Set(value)
	return s
}

// Set moves the slider, clamping to range.
func (s *Slider) Set(v int) {
	s.Value = max(s.Min, min(s.Max, v))
}

// Focus gives the slider keyboard focus.
func (s *Slider) Focus() { s.focused = true }

// Blur removes keyboard focus.
func (s *Slider) Blur() { s.focused = false }

// Focused reports whether the slider has focus.
func (s Slider) Focused() bool { return s.focused }

// Update handles left/right (and h/l) while focused.
func (s Slider) Update(msg tea.Msg) (Slider, tea.Cmd) {
	if !s.focused {
		return s, nil
	}
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "left", "h":
			s.Set(s.Value - 1)
		case "right", "l":
			s.Set(s.Value + 1)
		case "home":
			s.Set(s.Min)
		case "end":
			s.Set(s.Max)
		}
	}
	return s, nil
}

// View renders the label, track and value.
func (s Slider) View() string {
	label := theme.Subtitle.Render(s.Label)
	if s.focused {
		label = theme.Label.Render(s.Label)
	}

	steps := s.Max - s.Min + 1
	pos := s.Value - s.Min
	track := theme.SliderFilled.Render(strings.Repeat("━", pos)) +
		theme.SliderFilled.Render("●") +
		theme.SliderEmpty.Render(strings.Repeat("━", steps-pos-1))

	return fmt.Sprintf("%s  %s %s", label, track, theme.Body.Render(fmt.Sprintf("%2d", s.Value)))
}
