package llm

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"
)

// ErrNotConfigured is returned when no provider can be built from the
// environment.
var ErrNotConfigured = errors.New("no LLM provider configured")

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "openai", "anthropic", "gemini", "openrouter", "mock"
	Provider string

	OpenAI     OpenAIConfig
	Anthropic  AnthropicConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig

	// Timeout bounds a single LLM request, set on the provider's
	// http.Client. Default: 60s.
	Timeout time.Duration
}

// OpenAIConfig holds configuration for OpenAI and compatible chat
// completion endpoints.
type OpenAIConfig struct {
	APIKey  string `json:"-"`
	Model   string // Default: "gpt-3.5-turbo"
	BaseURL string // Optional. Any OpenAI-compatible endpoint.
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string `json:"-"`
	Model  string // Default: "claude-haiku"
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey  string `json:"-"`
	Model   string // Default: "gemini-flash"
	BaseURL string // Optional. Overrides the Gemini API endpoint.
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string `json:"-"`
	Model   string // Default: "openai/gpt-3.5-turbo"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "openai",
		OpenAI: OpenAIConfig{
			Model: "gpt-3.5-turbo",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		OpenRouter: OpenRouterConfig{
			Model: "openai/gpt-3.5-turbo",
		},
		Timeout: DefaultTimeout,
	}
}

// ConfigFromEnv builds a Config from YAYI_* environment variables, falling
// back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("YAYI_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}
	if t := os.Getenv("YAYI_LLM_TIMEOUT"); t != "" {
		d, err := time.ParseDuration(t)
		if err != nil || d <= 0 {
			log.Printf("llm: ignoring invalid YAYI_LLM_TIMEOUT %q", t)
		} else {
			cfg.Timeout = d
		}
	}

	if k := os.Getenv("YAYI_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("YAYI_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("YAYI_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if k := os.Getenv("YAYI_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("YAYI_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	if k := os.Getenv("YAYI_GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("YAYI_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	if k := os.Getenv("YAYI_OPENROUTER_API_KEY"); k != "" {
		cfg.OpenRouter.APIKey = k
	}
	if m := os.Getenv("YAYI_OPENROUTER_MODEL"); m != "" {
		cfg.OpenRouter.Model = m
	}

	return cfg
}

// DiscoverConfig probes standard API key env vars in priority order
// (OpenAI → Anthropic → Gemini → OpenRouter) and returns a Config for the
// first provider whose key is found. Returns (Config{}, false) if none found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider = "openrouter"
		cfg.OpenRouter.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// ResolveConfig returns the YAYI_* configuration when it is complete.
// Otherwise, unless YAYI_LLM_PROVIDER pins a provider, it falls back to
// DiscoverConfig. The timeout from the environment applies either way.
func ResolveConfig() (Config, error) {
	cfg := ConfigFromEnv()
	err := cfg.Validate()
	if err == nil {
		return cfg, nil
	}
	if os.Getenv("YAYI_LLM_PROVIDER") != "" {
		return Config{}, err
	}

	discovered, ok := DiscoverConfig()
	if !ok {
		return Config{}, ErrNotConfigured
	}
	discovered.Timeout = cfg.Timeout
	return discovered, nil
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("YAYI_OPENAI_API_KEY is required for the openai provider")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("YAYI_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("YAYI_GEMINI_API_KEY is required for the gemini provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("YAYI_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
