package pipeline

import (
	"time"

	"github.com/abhisek/lessonloop/internal/agents"
	"github.com/abhisek/lessonloop/internal/content"
)

// State is a step of a run. Every run ends in StateAccepted.
type State string

const (
	StateDrafting  State = "drafting"
	StateReviewing State = "reviewing"
	StateRefining  State = "refining"
	StateAccepted  State = "accepted"
)

// Label is the progress text shown while in s.
func (s State) Label() string {
	switch s {
	case StateDrafting:
		return "Generator Agent: drafting content..."
	case StateReviewing:
		return "Reviewer Agent: checking the draft..."
	case StateRefining:
		return "Generator Agent: refining with feedback..."
	case StateAccepted:
		return "Content accepted."
	default:
		return string(s)
	}
}

// Run is the transient record of one pipeline execution.
type Run struct {
	ID    string
	Grade int
	Topic string

	Draft   content.GeneratorResult
	Verdict content.ReviewVerdict
	// Refined is set only when the first verdict failed.
	Refined *content.GeneratorResult
	Final   content.GeneratorResult

	States  []State
	Notices []agents.Notice

	StartedAt  time.Time
	FinishedAt time.Time
}

// WasRefined reports whether a refinement pass ran.
func (r *Run) WasRefined() bool {
	return r.Refined != nil
}

// Duration is the wall time of the run.
func (r *Run) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
