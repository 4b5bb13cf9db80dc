package llm

import "context"

// Provider is the core abstraction for LLM interaction.
type Provider interface {
	// Generate sends a prompt to the LLM and returns its text reply.
	// Failures are returned as the typed errors in errors.go.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the system prompt. Optional.
	System string

	// Messages is the conversation history. For single-turn generation
	// this contains one user message.
	Messages []Message

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Zero leaves the provider default.
	Temperature float64

	// TopP is the nucleus sampling cutoff. Zero leaves the provider default.
	TopP float64
}

// Message represents a single message in the conversation.
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

// Response holds the LLM's output.
type Response struct {
	// Text is the first candidate's text, as returned.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
