package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single capability every vendor adapter exposes.
// One prompt goes in, one completion comes back. There is no retry,
// no backoff and no caching at this layer; transport failures
// propagate to the caller as-is.
type Provider interface {
	// Generate sends a prompt to the model and returns its completion.
	// When the request carries a Schema, the provider asks for structured
	// output and validates the completion against it before returning.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the system prompt. Empty means none is sent.
	System string

	// Messages is the conversation. Generation and grading are both
	// single-turn, so this is normally one user message.
	Messages []Message

	// Schema, when set, switches the provider to its native structured
	// output mechanism and validates the completion. When nil the
	// completion is returned verbatim.
	Schema *Schema

	// MaxTokens caps the completion length.
	MaxTokens int

	// Temperature controls randomness (0.0 - 1.0). Zero means the
	// provider default.
	Temperature float64
}

// Message is a single turn in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON structure the completion must conform to.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "reading-practice".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's completion.
type Response struct {
	// Content is the completion text. With a Schema it is the validated
	// JSON object; without one it is whatever the model produced,
	// which may be JSON wrapped in prose.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
