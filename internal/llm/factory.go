package llm

import (
	"context"
	"fmt"

	"github.com/abstractlab/yayi/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with event
// logging when eventRepo is non-nil. There is no retry layer: each
// Generate call makes at most one attempt.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI, cfg.Timeout)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic, cfg.Timeout)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini, cfg.Timeout)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter, cfg.Timeout)
	case "mock":
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithLogging(base, cfg.Provider, eventRepo), nil
}

// NewProviderFromEnv resolves configuration from the environment and
// builds the provider. It returns ErrNotConfigured when no credentials
// are present.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg, err := ResolveConfig()
	if err != nil {
		return nil, err
	}
	return NewProvider(ctx, cfg, eventRepo)
}
