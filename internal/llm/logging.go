package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// LoggingProvider records every call as a structured log entry.
type LoggingProvider struct {
	inner    Provider
	provider string
	logger   *zap.Logger
}

// WithLogging wraps a Provider with call logging. A nil logger disables it.
func WithLogging(p Provider, providerName string, logger *zap.Logger) Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingProvider{inner: p, provider: providerName, logger: logger.Named("llm")}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	fields := []zap.Field{
		zap.String("provider", l.provider),
		zap.String("purpose", PurposeFrom(ctx)),
		zap.Duration("latency", time.Since(start)),
	}
	if req.Schema != nil {
		fields = append(fields, zap.String("schema", req.Schema.Name))
	}

	if err != nil {
		fields = append(fields, zap.String("model", l.inner.ModelID()), zap.Error(err))
		l.logger.Warn("llm request failed", fields...)
		return nil, err
	}

	fields = append(fields,
		zap.String("model", resp.Model),
		zap.Int("input_tokens", resp.Usage.InputTokens),
		zap.Int("output_tokens", resp.Usage.OutputTokens),
		zap.String("stop_reason", resp.StopReason),
	)
	if cost := LookupCost(resp.Model); cost != nil {
		fields = append(fields, zap.Float64("cost_usd", cost.Cost(resp.Usage)))
	}
	l.logger.Info("llm request", fields...)
	l.logger.Debug("llm exchange",
		zap.String("purpose", PurposeFrom(ctx)),
		zap.String("request", serializeRequest(req)),
		zap.ByteString("response", resp.Content),
	)

	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest renders a request for debug logs.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		fmt.Fprintf(&b, "[schema: %s]\n", req.Schema.Name)
	}

	return b.String()
}
