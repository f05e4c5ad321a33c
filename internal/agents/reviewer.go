package agents

import (
	"context"

	"github.com/abhisek/lessonloop/internal/content"
	"go.uber.org/zap"
)

// Reviewer judges generated content for a grade.
type Reviewer struct {
	client *Client
	logger *zap.Logger
}

// NewReviewer creates a Reviewer.
func NewReviewer(client *Client) *Reviewer {
	return &Reviewer{client: client, logger: client.logger.Named("reviewer")}
}

// Review returns a verdict on r. Output that fails validation yields
// content.SentinelVerdict.
func (rv *Reviewer) Review(ctx context.Context, r content.GeneratorResult, grade int) content.ReviewVerdict {
	raw := rv.client.Invoke(ctx, RoleReviewer, buildReviewerPrompt(r, grade), content.ReviewSchema)

	v, err := content.DecodeReviewVerdict(raw)
	if err != nil {
		rv.logger.Warn("reviewer output rejected", zap.Error(err))
		return content.SentinelVerdict()
	}
	return v
}
