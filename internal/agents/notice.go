package agents

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/lessonloop/internal/llm"
)

// NoticeKind classifies a failed model call.
type NoticeKind string

const (
	NoticeTransport     NoticeKind = "transport"
	NoticeRateLimit     NoticeKind = "rate_limit"
	NoticeInvalidOutput NoticeKind = "invalid_output"
)

// Notice reports a model call that failed and was degraded. It is shown
// to the user and never stops a run.
type Notice struct {
	Role Role
	Kind NoticeKind
	Err  error
}

// Message is the user-facing text.
func (n Notice) Message() string {
	switch n.Kind {
	case NoticeRateLimit:
		return fmt.Sprintf("%s: quota or rate limit reached (%v)", n.Role, n.Err)
	case NoticeInvalidOutput:
		return fmt.Sprintf("%s: model output did not match the expected shape (%v)", n.Role, n.Err)
	default:
		return fmt.Sprintf("%s: model call failed (%v)", n.Role, n.Err)
	}
}

func classify(role Role, err error) Notice {
	n := Notice{Role: role, Kind: NoticeTransport, Err: err}

	var rl *llm.ErrRateLimit
	var inv *llm.ErrInvalidResponse
	var mt *llm.ErrMaxTokensExceeded
	switch {
	case errors.As(err, &rl):
		n.Kind = NoticeRateLimit
	case errors.As(err, &inv), errors.As(err, &mt):
		n.Kind = NoticeInvalidOutput
	}
	return n
}

type noticeKey struct{}

// WithNoticeHandler routes notices raised by calls made with ctx to fn.
func WithNoticeHandler(ctx context.Context, fn func(Notice)) context.Context {
	return context.WithValue(ctx, noticeKey{}, fn)
}

func notify(ctx context.Context, n Notice) {
	if fn, ok := ctx.Value(noticeKey{}).(func(Notice)); ok && fn != nil {
		fn(n)
	}
}
