// Package render turns pipeline output into styled text. The TUI and the
// headless generate command share it.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lessonloop/internal/agents"
	"github.com/abhisek/lessonloop/internal/content"
	"github.com/abhisek/lessonloop/internal/pipeline"
	"github.com/abhisek/lessonloop/internal/ui/theme"
)

// StageLabel renders a progress line such as "✦ Reviewer Agent: ...".
func StageLabel(p pipeline.Progress) string {
	if p.Notice != nil {
		return Notice(*p.Notice)
	}
	if p.State == pipeline.StateAccepted {
		return theme.Answer.Render("✓ " + p.Label)
	}
	return theme.Label.Render("✦ ") + theme.Body.Render(p.Label)
}

// RawJSON renders a generator draft as indented JSON.
func RawJSON(r content.GeneratorResult) string {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "{}"
	}
	return theme.Code.Render(string(b))
}

// Verdict renders the pass/fail banner, followed by the feedback on fail.
func Verdict(v content.ReviewVerdict) string {
	if v.Passed() {
		return theme.PassBanner.Render("PASS") + " " + theme.Body.Render("Reviewer approved the draft.")
	}

	var b strings.Builder
	b.WriteString(theme.FailBanner.Render("FAIL"))
	b.WriteString(" ")
	b.WriteString(theme.Body.Render("Reviewer requested changes:"))
	for _, f := range v.Feedback {
		b.WriteString("\n  • ")
		b.WriteString(theme.Body.Render(f))
	}
	return b.String()
}

// Notice renders a degraded model call.
func Notice(n agents.Notice) string {
	return theme.Notice.Render("⚠ " + n.Message())
}

// Final renders the explanation and one block per question, each showing
// the question text and its answer. width <= 0 disables wrapping.
func Final(r content.GeneratorResult, width int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Explanation"))
	b.WriteString("\n")
	b.WriteString(wrap(theme.Body, width).Render(r.Explanation))

	for i, q := range r.Questions {
		block := theme.Label.Render(fmt.Sprintf("Q%d. ", i+1)) + theme.Body.Render(q.Question) +
			"\n" + theme.Subtitle.Render("Answer: ") + theme.Answer.Render(q.Answer)
		b.WriteString("\n\n")
		b.WriteString(wrap(theme.Card, width).Render(block))
	}

	return b.String()
}

// Run renders a finished run the way the headless command prints it.
func Run(run *pipeline.Run, width int) string {
	var b strings.Builder

	b.WriteString(theme.Subtitle.Render("Draft"))
	b.WriteString("\n")
	b.WriteString(RawJSON(run.Draft))
	b.WriteString("\n\n")
	b.WriteString(Verdict(run.Verdict))
	if run.WasRefined() {
		b.WriteString("\n\n")
		b.WriteString(theme.Subtitle.Render("Refined once with reviewer feedback."))
	}
	b.WriteString("\n\n")
	b.WriteString(Final(run.Final, width))
	b.WriteString("\n")

	return b.String()
}

func wrap(s lipgloss.Style, width int) lipgloss.Style {
	if width <= 0 {
		return s
	}
	return s.Width(width)
}
