package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

var verdictTestSchema = &Schema{
	Name: "anthropic-verdict",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"status":   map[string]any{"type": "string", "enum": []string{"pass", "fail"}},
			"feedback": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
		"required": []string{"status", "feedback"},
	},
}

// anthropicReply writes a Messages API body carrying text.
func anthropicReply(w http.ResponseWriter, text, stopReason string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"id":          "msg_test",
		"type":        "message",
		"role":        "assistant",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"model":       "claude-haiku-4-5",
		"stop_reason": stopReason,
		"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
	})
}

func anthropicFailure(status int, errType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]any{
			"type":  "error",
			"error": map[string]any{"type": errType, "message": "upstream says no"},
		})
	}
}

func newTestAnthropicProvider(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewAnthropicProvider(AnthropicConfig{
		APIKey:  "test-key",
		Model:   "claude-haiku",
		BaseURL: server.URL,
	})
	if err != nil {
		t.Fatalf("NewAnthropicProvider: %v", err)
	}
	return p
}

func reviewRequest() Request {
	return Request{
		Messages: []Message{{Role: RoleUser, Content: "Review this content for Grade 4"}},
		Schema:   verdictTestSchema,
	}
}

func TestAnthropicProvider_ReturnsVerdict(t *testing.T) {
	p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
		anthropicReply(w, `{"status":"pass","feedback":[]}`, "end_turn")
	})

	resp, err := p.Generate(context.Background(), reviewRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"status":"pass","feedback":[]}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if resp.Usage.TotalTokens != 80 {
		t.Fatalf("expected 80 total tokens, got %d", resp.Usage.TotalTokens)
	}
	if resp.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp.StopReason)
	}
	if resp.Model != "claude-haiku-4-5" {
		t.Fatalf("expected model claude-haiku-4-5, got %q", resp.Model)
	}
}

func TestAnthropicProvider_RequestShape(t *testing.T) {
	var body map[string]any
	p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &body)
		anthropicReply(w, `{"status":"fail","feedback":["too hard"]}`, "end_turn")
	})

	req := reviewRequest()
	req.Temperature = 0.7
	if _, err := p.Generate(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if body["model"] != "claude-haiku-4-5" {
		t.Errorf("model = %v", body["model"])
	}
	if body["max_tokens"] != float64(defaultAnthropicMaxTokens) {
		t.Errorf("max_tokens = %v, want default %d", body["max_tokens"], defaultAnthropicMaxTokens)
	}
	if body["temperature"] != 0.7 {
		t.Errorf("temperature = %v", body["temperature"])
	}
	if _, ok := body["system"]; ok {
		t.Error("system block sent for a request without one")
	}
	msgs, _ := body["messages"].([]any)
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
}

func TestAnthropicProvider_TruncatedReply(t *testing.T) {
	p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
		anthropicReply(w, `{"status":"pa`, "max_tokens")
	})

	_, err := p.Generate(context.Background(), reviewRequest())
	var mt *ErrMaxTokensExceeded
	if !errors.As(err, &mt) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %T (%v)", err, err)
	}
	if string(mt.Content) != `{"status":"pa` {
		t.Fatalf("partial content not kept: %s", mt.Content)
	}
}

func TestAnthropicProvider_SchemaMismatch(t *testing.T) {
	p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
		anthropicReply(w, `{"status":"maybe","feedback":[]}`, "end_turn")
	})

	_, err := p.Generate(context.Background(), reviewRequest())
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
	}
	if string(inv.Content) != `{"status":"maybe","feedback":[]}` {
		t.Fatalf("raw reply not kept: %s", inv.Content)
	}
}

func TestAnthropicProvider_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		check   func(error) bool
	}{
		{
			name:    "rate limited",
			handler: anthropicFailure(http.StatusTooManyRequests, "rate_limit_error"),
			check:   func(err error) bool { var e *ErrRateLimit; return errors.As(err, &e) },
		},
		{
			name:    "server error",
			handler: anthropicFailure(http.StatusInternalServerError, "api_error"),
			check:   func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) },
		},
		{
			name:    "bad credential",
			handler: anthropicFailure(http.StatusUnauthorized, "authentication_error"),
			check:   func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestAnthropicProvider(t, tt.handler)
			_, err := p.Generate(context.Background(), reviewRequest())
			if err == nil || !tt.check(err) {
				t.Fatalf("unexpected error: %T (%v)", err, err)
			}
		})
	}
}

func TestNewAnthropicProvider_RequiresKey(t *testing.T) {
	if _, err := NewAnthropicProvider(AnthropicConfig{Model: "claude-haiku"}); err == nil {
		t.Fatal("expected error for missing key")
	}
}

func TestAnthropicProvider_ModelID(t *testing.T) {
	p, err := NewAnthropicProvider(AnthropicConfig{APIKey: "k", Model: "claude-sonnet"})
	if err != nil {
		t.Fatal(err)
	}
	if p.ModelID() != "claude-sonnet-4-5" {
		t.Fatalf("expected claude-sonnet-4-5, got %q", p.ModelID())
	}
}

func TestAnthropicModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"claude-sonnet", "claude-sonnet-4-5"},
		{"claude-haiku", "claude-haiku-4-5"},
		{"claude-opus-4-1", "claude-opus-4-1"}, // literal ID
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, anthropicModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
