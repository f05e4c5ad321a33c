package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/lessonloop/internal/agents"
	"github.com/abhisek/lessonloop/internal/content"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MinGrade and MaxGrade bound Input.Grade.
const (
	MinGrade = 1
	MaxGrade = 12
)

// DefaultTopic is offered when the user has not typed one.
const DefaultTopic = "Solar System"

// ErrInvalidInput is returned by Run for an out-of-range grade or a blank
// topic.
var ErrInvalidInput = errors.New("invalid input")

// Input starts a run.
type Input struct {
	Grade int
	Topic string

	// Observer, when set, receives progress for this run.
	Observer Observer
}

// Validate checks the grade range and that the topic is not blank.
func (in Input) Validate() error {
	if in.Grade < MinGrade || in.Grade > MaxGrade {
		return fmt.Errorf("%w: grade %d is outside %d-%d", ErrInvalidInput, in.Grade, MinGrade, MaxGrade)
	}
	if strings.TrimSpace(in.Topic) == "" {
		return fmt.Errorf("%w: topic is empty", ErrInvalidInput)
	}
	return nil
}

// Orchestrator runs draft, review and at most one refinement. The refined
// draft is accepted without a second review.
type Orchestrator struct {
	generator *agents.Generator
	reviewer  *agents.Reviewer
	logger    *zap.Logger
	now       func() time.Time
}

// New creates an Orchestrator.
func New(generator *agents.Generator, reviewer *agents.Reviewer, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		generator: generator,
		reviewer:  reviewer,
		logger:    logger.Named("pipeline"),
		now:       time.Now,
	}
}

// Run executes one pipeline pass. Model failures degrade to sentinel
// values and never abort the run; the only errors are ErrInvalidInput and
// context cancellation.
func (o *Orchestrator) Run(ctx context.Context, in Input) (*Run, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	// Only validation trims; the prompt quotes the topic as entered.
	topic := in.Topic
	run := &Run{
		ID:        uuid.NewString(),
		Grade:     in.Grade,
		Topic:     topic,
		StartedAt: o.now(),
	}
	log := o.logger.With(zap.String("run_id", run.ID))
	log.Info("run started", zap.Int("grade", run.Grade), zap.String("topic", topic))

	state := StateDrafting
	emit := func(p Progress) {
		p.RunID = run.ID
		if p.Label == "" {
			p.Label = p.State.Label()
		}
		if in.Observer != nil {
			in.Observer(p)
		}
	}
	enter := func(s State, role agents.Role, draft *content.GeneratorResult, verdict *content.ReviewVerdict) {
		state = s
		run.States = append(run.States, s)
		log.Info("state", zap.String("state", string(s)))
		emit(Progress{State: s, Role: role, Draft: draft, Verdict: verdict})
	}

	ctx = agents.WithNoticeHandler(ctx, func(n agents.Notice) {
		run.Notices = append(run.Notices, n)
		emit(Progress{State: state, Role: n.Role, Label: n.Message(), Notice: &n})
	})

	enter(StateDrafting, agents.RoleGenerator, nil, nil)
	run.Draft = o.generator.Generate(ctx, run.Grade, topic, nil)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if run.Draft.IsSentinel() {
		log.Warn("draft unusable, continuing with placeholder")
	}

	enter(StateReviewing, agents.RoleReviewer, &run.Draft, nil)
	run.Verdict = o.reviewer.Review(ctx, run.Draft, run.Grade)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log.Info("verdict",
		zap.String("status", string(run.Verdict.Status)),
		zap.Strings("feedback", run.Verdict.Feedback),
	)

	run.Final = run.Draft
	if !run.Verdict.Passed() {
		enter(StateRefining, agents.RoleGenerator, &run.Draft, &run.Verdict)
		refined := o.generator.Generate(ctx, run.Grade, topic, run.Verdict.Feedback)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		run.Refined = &refined
		run.Final = refined
	}

	run.FinishedAt = o.now()
	enter(StateAccepted, "", &run.Final, &run.Verdict)
	log.Info("run finished",
		zap.Bool("refined", run.WasRefined()),
		zap.Int("questions", len(run.Final.Questions)),
		zap.Int("notices", len(run.Notices)),
		zap.Duration("duration", run.Duration()),
	)

	return run, nil
}
