package components

import (
	"strings"

	"github.com/abhisek/lessonloop/internal/ui/theme"
)

// StageTrack shows an ordered list of stages with the current one marked.
// Stages listed in Skipped are drawn struck through once the track has
// moved past them.
type StageTrack struct {
	Stages  []string
	Current int // index into Stages; -1 before the first stage starts
	Done    bool
	Skipped map[int]bool
}

// NewStageTrack creates a track with nothing started.
func NewStageTrack(stages ...string) StageTrack {
	return StageTrack{Stages: stages, Current: -1, Skipped: map[int]bool{}}
}

// Advance moves the marker to stage i. Stages jumped over are recorded as
// skipped.
func (t StageTrack) Advance(i int) StageTrack {
	if i < 0 || i >= len(t.Stages) {
		return t
	}
	skipped := make(map[int]bool, len(t.Skipped))
	for k, v := range t.Skipped {
		skipped[k] = v
	}
	for j := t.Current + 1; j < i; j++ {
		skipped[j] = true
	}
	t.Skipped = skipped
	t.Current = i
	t.Done = i == len(t.Stages)-1
	return t
}

// View renders the track on one line.
func (t StageTrack) View() string {
	parts := make([]string, len(t.Stages))
	for i, name := range t.Stages {
		switch {
		case t.Skipped[i]:
			parts[i] = theme.StepSkipped.Render("– " + name)
		case i < t.Current || (i == t.Current && t.Done):
			parts[i] = theme.StepDone.Render("✓ " + name)
		case i == t.Current:
			parts[i] = theme.StepActive.Render("● " + name)
		default:
			parts[i] = theme.StepPending.Render("○ " + name)
		}
	}
	return strings.Join(parts, theme.StepPending.Render(" ── "))
}
