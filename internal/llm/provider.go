package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one structured reply per call. Every backend, the
// mock, and the retry/logging/profile decorators implement it.
type Provider interface {
	// Generate sends req and returns the reply. When req.Schema is set the
	// reply Content has already been validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the default model, used when neither the request nor its
	// purpose profile names one.
	ModelID() string
}

// Request is one prompt. Zero MaxTokens, Temperature and Model are filled
// from the purpose profile by WithProfiles.
type Request struct {
	System   string
	Messages []Message

	// Schema, when set, asks the backend for JSON output and validates it.
	Schema *Schema

	// Model overrides the backend default for this request only.
	Model string

	MaxTokens   int
	Temperature float64
}

// Message is a single conversation turn.
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

// Schema names a JSON Schema the reply must satisfy. Name doubles as the
// OpenAI schema name and the validation cache key, so keep it unique per
// shape ("ielts-question", "translation").
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Normalized stop reasons.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

// Response is a completed generation.
type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason string
}

// Usage is the token count of one call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

func newUsage(in, out int) Usage {
	return Usage{InputTokens: in, OutputTokens: out, TotalTokens: in + out}
}
