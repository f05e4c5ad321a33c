package studio

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lessonloop/internal/ui/layout"
	"github.com/abhisek/lessonloop/internal/ui/render"
	"github.com/abhisek/lessonloop/internal/ui/theme"
)

func (s *StudioScreen) View(width, height int) string {
	inner := width - 4
	if inner < 20 {
		inner = 20
	}

	var b strings.Builder
	b.WriteString(s.renderInputs(inner))

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  " + s.errMsg))
	}

	if s.state != "" {
		b.WriteString("\n\n")
		b.WriteString(s.track.View())
		for _, p := range s.log {
			b.WriteString("\n")
			b.WriteString(render.StageLabel(p))
		}
	}

	if s.final != nil {
		b.WriteString("\n\n")
		b.WriteString(s.renderResult(inner))
	} else if s.draft != nil {
		b.WriteString("\n\n")
		b.WriteString(theme.Subtitle.Render("Draft"))
		b.WriteString("\n")
		b.WriteString(render.RawJSON(*s.draft))
		if s.verdict != nil {
			b.WriteString("\n\n")
			b.WriteString(render.Verdict(*s.verdict))
		}
	}

	return lipgloss.NewStyle().Padding(0, 2).Render(b.String())
}

func (s *StudioScreen) renderInputs(width int) string {
	inputs := s.grade.View() + "\n" + s.topic.View() + "\n\n" + s.button.View()
	return theme.FocusedCard.Width(width).Render(inputs)
}

// renderResult puts the raw draft and the verdict beside the accepted
// content on wide terminals, and stacks them otherwise.
func (s *StudioScreen) renderResult(width int) string {
	run := s.final
	left := theme.Subtitle.Render("Draft") + "\n" + render.RawJSON(run.Draft) +
		"\n\n" + render.Verdict(run.Verdict)
	if run.WasRefined() {
		left += "\n\n" + theme.Hint.Render("Refined once with reviewer feedback.")
	}

	if layout.IsCompactWidth(width) {
		return left + "\n\n" + render.Final(run.Final, width)
	}

	half := width/2 - 1
	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(half).Render(left),
		"  ",
		render.Final(run.Final, half),
	)
}
