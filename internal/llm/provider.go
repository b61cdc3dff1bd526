// Package llm abstracts the hosted model APIs the study content
// generators talk to. The revision generator is the only production
// caller today; it asks for a single-turn completion constrained by a
// JSON schema and parses the result into a summary. Providers for
// Anthropic, OpenAI, Gemini and OpenRouter share one interface, and the
// factory wraps whichever is configured with retry and event-logging
// decorators.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates structured content from a prompt.
type Provider interface {
	// Generate runs one completion. When the request carries a Schema the
	// returned Content is JSON already validated against it; otherwise
	// Content is the raw text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the concrete model identifier in use.
	ModelID() string
}

// Request is one generation call.
type Request struct {
	// System sets the model's role. For revision content this frames the
	// model as a tutor for grades 5 through 8.
	System string

	// Messages is the conversation. Study content is single-turn, so this
	// is normally one user message.
	Messages []Message

	// Schema, when set, constrains the output to JSON matching it. The
	// provider uses its native structured-output mechanism and the result
	// is validated locally as well.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0,1]. Zero means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON shape a generation must produce,
// e.g. the revision-summary object.
type Schema struct {
	// Name is a kebab-case identifier, doubling as the tool or schema
	// name on providers that want one.
	Name string

	// Description tells the model what the object represents.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the outcome of one generation.
type Response struct {
	// Content is validated JSON when the request had a Schema, raw text
	// otherwise.
	Content json.RawMessage

	// Usage is the token count the provider reported.
	Usage Usage

	// Model is the model that actually served the call.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage is per-request token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

type contextKey string

const purposeKey contextKey = "llm_purpose"

// WithPurpose tags the context with a label ("revision_summary") that the
// logging decorator records with the event.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom reads the purpose label, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
