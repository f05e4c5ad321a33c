package agents

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/lessonloop/internal/llm"
	"go.uber.org/zap"
)

// Role is the persona a call is made under.
type Role string

const (
	RoleGenerator Role = "generator"
	RoleReviewer  Role = "reviewer"
)

// Client sends role-flavored prompts to the model and returns raw JSON
// text. With no provider it serves canned replies after MockDelay.
type Client struct {
	provider llm.Provider
	cfg      Config
	logger   *zap.Logger
}

// NewClient creates a Client. A nil provider selects offline mode.
func NewClient(provider llm.Provider, cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{provider: provider, cfg: cfg, logger: logger.Named("agents")}
}

// Offline reports whether the client serves canned replies.
func (c *Client) Offline() bool {
	return c.provider == nil
}

// ModelID names the backing model, or "offline".
func (c *Client) ModelID() string {
	if c.provider == nil {
		return "offline"
	}
	return c.provider.ModelID()
}

// Invoke runs one single-turn call and returns the reply text. It never
// fails: a provider error raises a Notice on ctx and yields "{}", except
// that output rejected by the schema is returned as-is so the caller's
// own parsing decides what to do with it.
func (c *Client) Invoke(ctx context.Context, role Role, prompt string, schema *llm.Schema) string {
	if c.provider == nil {
		return c.invokeOffline(ctx, role, prompt)
	}

	ctx = llm.WithPurpose(ctx, string(role))
	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: persona(role) + " " + prompt},
		},
		Schema:      schema,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	}

	resp, err := c.provider.Generate(ctx, req)
	if err != nil {
		n := classify(role, err)
		c.logger.Warn("model call degraded",
			zap.String("role", string(role)),
			zap.String("kind", string(n.Kind)),
			zap.Error(err),
		)
		notify(ctx, n)

		var inv *llm.ErrInvalidResponse
		if errors.As(err, &inv) && len(inv.Content) > 0 {
			return string(inv.Content)
		}
		return "{}"
	}

	return string(resp.Content)
}

func (c *Client) invokeOffline(ctx context.Context, role Role, prompt string) string {
	if c.cfg.MockDelay > 0 {
		t := time.NewTimer(c.cfg.MockDelay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return "{}"
		case <-t.C:
		}
	}
	c.logger.Debug("offline reply", zap.String("role", string(role)))
	return cannedReply(role, prompt)
}

func persona(role Role) string {
	return fmt.Sprintf("You are a %s agent for an educational system.", role)
}
