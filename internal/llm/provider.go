package llm

import (
	"context"
	"encoding/json"
)

// Provider is a single remote text-generation backend.
type Provider interface {
	// Generate issues one request and returns the model output. When the
	// request carries a Schema, the provider asks the backend for JSON
	// constrained to it and validates the reply before returning.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the backend model identifier.
	ModelID() string
}

// Request describes one call to a Provider.
type Request struct {
	// System is an optional system instruction. The pipeline stages put
	// their persona into the user message instead and leave this empty.
	System string

	// Messages is the conversation. Stage calls are single-turn.
	Messages []Message

	// Schema constrains the shape of the reply. Nil means free text.
	Schema *Schema

	// MaxTokens caps the reply length. Zero leaves the backend default.
	MaxTokens int

	// Temperature in [0, 1]. Zero leaves the backend default.
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the sender of a Message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema. The same value is sent to the backend as
// the output constraint and used locally to validate the reply.
type Schema struct {
	// Name identifies the schema, kebab-case (e.g. "generator-result").
	Name string

	// Description is passed to backends that accept one.
	Description string

	// Definition is the JSON Schema document.
	Definition map[string]any
}

// Response is the provider output.
type Response struct {
	// Content is the raw reply text. For schema requests it has already
	// passed validation.
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage is token accounting for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
