package studio

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lessonloop/internal/content"
	"github.com/abhisek/lessonloop/internal/pipeline"
	"github.com/abhisek/lessonloop/internal/screen"
	"github.com/abhisek/lessonloop/internal/ui/components"
	"github.com/abhisek/lessonloop/internal/ui/layout"
)

const (
	focusGrade = iota
	focusTopic
)

// Runner executes one pipeline run.
type Runner interface {
	Run(ctx context.Context, in pipeline.Input) (*pipeline.Run, error)
}

// StudioScreen is the single interactive screen: grade and topic inputs,
// a trigger, live stage progress and the accepted content.
type StudioScreen struct {
	ctx    context.Context
	runner Runner

	grade  components.Slider
	topic  components.TextInput
	button components.Button
	focus  int

	running bool
	events  chan tea.Msg

	log     []pipeline.Progress
	state   pipeline.State
	track   components.StageTrack
	draft   *content.GeneratorResult
	verdict *content.ReviewVerdict
	final   *pipeline.Run
	errMsg  string
}

var _ screen.Screen = (*StudioScreen)(nil)
var _ screen.KeyHintProvider = (*StudioScreen)(nil)

// New creates the studio. ctx bounds every run started from it.
func New(ctx context.Context, runner Runner) *StudioScreen {
	s := &StudioScreen{
		ctx:    ctx,
		runner: runner,
		grade:  components.NewSlider("Grade", pipeline.MinGrade, pipeline.MaxGrade, 4),
		topic:  components.NewTextInput("Topic", "e.g. Fractions", pipeline.DefaultTopic, 80),
	}
	s.grade.Focus()
	s.button = components.NewButton("Generate", true, s.start)
	s.button.BusyLabel = "Generating..."
	return s
}

func (s *StudioScreen) Init() tea.Cmd {
	return nil
}

func (s *StudioScreen) Title() string {
	return "Content Studio"
}

func (s *StudioScreen) KeyHints() []layout.KeyHint {
	if s.running {
		return []layout.KeyHint{
			{Key: "…", Description: "Running"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	hints := []layout.KeyHint{{Key: "Tab", Description: "Switch field"}}
	if s.focus == focusGrade {
		hints = append(hints, layout.KeyHint{Key: "←→", Description: "Grade"})
	}
	return append(hints,
		layout.KeyHint{Key: "Enter", Description: "Generate"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
}

func (s *StudioScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		return s.handleProgress(msg)
	case runDoneMsg:
		return s.handleDone(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.focus == focusTopic {
		var cmd tea.Cmd
		s.topic, cmd = s.topic.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *StudioScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		return s, s.toggleFocus()
	case "enter":
		// OnPress mutates s; the returned copy predates that.
		_, cmd := s.button.Update(msg)
		return s, cmd
	}

	var cmd tea.Cmd
	switch s.focus {
	case focusGrade:
		s.grade, cmd = s.grade.Update(msg)
	case focusTopic:
		s.topic, cmd = s.topic.Update(msg)
	}
	return s, cmd
}

func (s *StudioScreen) toggleFocus() tea.Cmd {
	if s.focus == focusGrade {
		s.focus = focusTopic
		s.grade.Blur()
		return s.topic.Focus()
	}
	s.focus = focusGrade
	s.topic.Blur()
	s.grade.Focus()
	return nil
}

// start launches a run on its own goroutine. Progress flows back through
// s.events; the button stays inactive until the run returns, so runs never
// overlap.
func (s *StudioScreen) start() tea.Cmd {
	if s.running {
		return nil
	}

	in := pipeline.Input{Grade: s.grade.Value, Topic: s.topic.Value()}
	if err := in.Validate(); err != nil {
		s.errMsg = err.Error()
		return nil
	}

	s.running = true
	s.button.Active = false
	s.errMsg = ""
	s.log = nil
	s.state = ""
	s.track = newTrack()
	s.draft = nil
	s.verdict = nil
	s.final = nil

	events := make(chan tea.Msg, 16)
	s.events = events
	in.Observer = func(p pipeline.Progress) {
		events <- progressMsg{Progress: p}
	}

	go func() {
		run, err := s.runner.Run(s.ctx, in)
		events <- runDoneMsg{Run: run, Err: err}
		close(events)
	}()

	return listen(events)
}

var stageIndex = map[pipeline.State]int{
	pipeline.StateDrafting:  0,
	pipeline.StateReviewing: 1,
	pipeline.StateRefining:  2,
	pipeline.StateAccepted:  3,
}

func newTrack() components.StageTrack {
	return components.NewStageTrack("Draft", "Review", "Refine", "Accept")
}

// listen waits for the next pipeline message.
func listen(events <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-events
		if !ok {
			return nil
		}
		return msg
	}
}

func (s *StudioScreen) handleProgress(msg progressMsg) (screen.Screen, tea.Cmd) {
	p := msg.Progress
	s.log = append(s.log, p)
	if p.Notice != nil {
		return s, listen(s.events)
	}

	s.state = p.State
	s.track = s.track.Advance(stageIndex[p.State])
	switch p.State {
	case pipeline.StateReviewing:
		s.draft = p.Draft
	case pipeline.StateRefining:
		s.verdict = p.Verdict
	case pipeline.StateAccepted:
		s.verdict = p.Verdict
	}
	return s, listen(s.events)
}

func (s *StudioScreen) handleDone(msg runDoneMsg) (screen.Screen, tea.Cmd) {
	s.running = false
	s.button.Active = true
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	if msg.Run == nil {
		return s, nil
	}
	s.final = msg.Run
	s.draft = &msg.Run.Draft
	s.verdict = &msg.Run.Verdict
	return s, nil
}
