package agents

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/lessonloop/internal/content"
)

// FeedbackMarker prefixes reviewer feedback in a refinement prompt. The
// offline reviewer passes any prompt containing it.
const FeedbackMarker = "CRITICAL FEEDBACK"

func buildGeneratorPrompt(grade int, topic string, feedback []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate content for Grade %d on topic '%s'.", grade, topic)
	if len(feedback) > 0 {
		fmt.Fprintf(&b, "\n\n%s TO ADDRESS: %s", FeedbackMarker, formatFeedback(feedback))
	}
	return b.String()
}

func buildReviewerPrompt(r content.GeneratorResult, grade int) string {
	body, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		body = []byte("{}")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Review this content for Grade %d:\n%s\n\n", grade, body)
	fmt.Fprintf(&b, "Check that it is age-appropriate for Grade %d, clear, and correct. ", grade)
	b.WriteString("Answer with status pass or fail, and list concrete feedback for anything that must change.")
	return b.String()
}

// formatFeedback renders feedback as a bracketed list of quoted strings,
// e.g. ['Too complex.', 'Add example.'].
func formatFeedback(feedback []string) string {
	parts := make([]string, len(feedback))
	for i, f := range feedback {
		parts[i] = quote(f)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// quote wraps s in single quotes, switching to double quotes when s holds
// a single quote and no double quote.
func quote(s string) string {
	q := "'"
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		q = `"`
	}
	s = strings.ReplaceAll(s, `\`, `\\`)
	if q == "'" {
		s = strings.ReplaceAll(s, "'", `\'`)
	}
	s = strings.ReplaceAll(s, "\n", `\n`)
	return q + s + q
}
