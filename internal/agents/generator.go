package agents

import (
	"context"

	"github.com/abhisek/lessonloop/internal/content"
	"go.uber.org/zap"
)

// Generator drafts an explanation and questions for a grade and topic.
type Generator struct {
	client *Client
	logger *zap.Logger
}

// NewGenerator creates a Generator.
func NewGenerator(client *Client) *Generator {
	return &Generator{client: client, logger: client.logger.Named("generator")}
}

// Generate drafts content. Non-empty feedback is appended to the prompt
// for a refinement pass. Output that fails validation yields
// content.SentinelResult.
func (g *Generator) Generate(ctx context.Context, grade int, topic string, feedback []string) content.GeneratorResult {
	raw := g.client.Invoke(ctx, RoleGenerator, buildGeneratorPrompt(grade, topic, feedback), content.GeneratorSchema)

	r, err := content.DecodeGeneratorResult(raw)
	if err != nil {
		g.logger.Warn("generator output rejected", zap.Error(err))
		return content.SentinelResult()
	}
	for _, w := range content.Lint(r) {
		g.logger.Info("content lint", zap.String("warning", w))
	}
	return r
}
