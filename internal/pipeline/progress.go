package pipeline

import (
	"github.com/abhisek/lessonloop/internal/agents"
	"github.com/abhisek/lessonloop/internal/content"
)

// Progress is emitted on every state change and for every notice. Draft
// and Verdict carry the newest stage output, when there is one.
type Progress struct {
	RunID string
	State State
	Role  agents.Role
	Label string

	Draft   *content.GeneratorResult
	Verdict *content.ReviewVerdict
	Notice  *agents.Notice
}

// Observer receives progress. It runs on the pipeline goroutine and must
// not block for long.
type Observer func(Progress)
