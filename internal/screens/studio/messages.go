package studio

import "github.com/abhisek/lessonloop/internal/pipeline"

// progressMsg carries one pipeline event into the event loop.
type progressMsg struct {
	Progress pipeline.Progress
}

// runDoneMsg is sent when a run has returned.
type runDoneMsg struct {
	Run *pipeline.Run
	Err error
}
