package content

import (
	"fmt"
	"slices"
	"strings"
)

// Lint reports problems that schema validation cannot catch, such as an
// answer missing from its options. The warnings are advisory: callers log
// them and carry on.
func Lint(r GeneratorResult) []string {
	var warnings []string

	if strings.TrimSpace(r.Explanation) == "" {
		warnings = append(warnings, "explanation is empty")
	}
	for i, q := range r.Questions {
		n := i + 1
		if strings.TrimSpace(q.Question) == "" {
			warnings = append(warnings, fmt.Sprintf("question %d: text is empty", n))
		}
		if len(q.Options) < 2 {
			warnings = append(warnings, fmt.Sprintf("question %d: fewer than 2 options", n))
		}
		if !slices.Contains(q.Options, q.Answer) {
			warnings = append(warnings, fmt.Sprintf("question %d: answer %q is not one of the options", n, q.Answer))
		}
		if dup := firstDuplicate(q.Options); dup != "" {
			warnings = append(warnings, fmt.Sprintf("question %d: duplicate option %q", n, dup))
		}
	}

	return warnings
}

func firstDuplicate(opts []string) string {
	seen := make(map[string]bool, len(opts))
	for _, o := range opts {
		if seen[o] {
			return o
		}
		seen[o] = true
	}
	return ""
}
