package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: "first", Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Text: "second"},
	)

	resp1, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "a"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp1.Text != "first" {
		t.Fatalf("expected 'first', got %q", resp1.Text)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}
	if resp1.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp1.StopReason)
	}

	resp2, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "b"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp2.Text != "second" {
		t.Fatalf("expected 'second', got %q", resp2.Text)
	}
}

func TestMockProvider_EmptyQueueIsUnreached(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from empty queue")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
	if Reached(err) {
		t.Fatal("empty queue should read as never reached")
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "ok"})

	req := Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
		TopP:     0.8,
	}
	_, _ = mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	last, ok := mock.LastRequest()
	if !ok || last.System != "sys" || last.TopP != 0.8 {
		t.Fatalf("unexpected last request %+v", last)
	}
}

func TestMockProvider_ReturnsConfiguredError(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: 0}},
	)

	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
}

func TestMockProvider_ModelID(t *testing.T) {
	mock := NewMockProvider()
	if mock.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", mock.ModelID())
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}

	ctx = WithPurpose(ctx, "commentary")
	if p := PurposeFrom(ctx); p != "commentary" {
		t.Fatalf("expected 'commentary', got %q", p)
	}
}

func TestSessionContext(t *testing.T) {
	ctx := context.Background()
	if s := SessionFrom(ctx); s != "" {
		t.Fatalf("expected empty session, got %q", s)
	}
	ctx = WithSession(ctx, "abc")
	if s := SessionFrom(ctx); s != "abc" {
		t.Fatalf("expected 'abc', got %q", s)
	}
}

func TestReached(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, true},
		{"rate limit", &ErrRateLimit{}, true},
		{"invalid response", &ErrInvalidResponse{Err: errors.New("bad json")}, true},
		{"max tokens", &ErrMaxTokensExceeded{}, true},
		{"http 500", &ErrProviderUnavailable{StatusCode: 500}, true},
		{"no response", &ErrProviderUnavailable{Err: errors.New("dial tcp")}, false},
		{"wrapped 500", fmt.Errorf("commentary: %w", &ErrProviderUnavailable{StatusCode: 500}), true},
		{"unknown", errors.New("boom"), false},
		{"cancelled", context.Canceled, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reached(tt.err); got != tt.want {
				t.Fatalf("Reached(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestClassifyStatus(t *testing.T) {
	base := errors.New("x")

	if _, ok := classifyStatus(base, 0).(*ErrProviderUnavailable); !ok {
		t.Error("status 0 should be ErrProviderUnavailable")
	}
	if _, ok := classifyStatus(base, 200).(*ErrInvalidResponse); !ok {
		t.Error("status 200 should be ErrInvalidResponse")
	}
	if _, ok := classifyStatus(base, 429).(*ErrRateLimit); !ok {
		t.Error("status 429 should be ErrRateLimit")
	}
	err := classifyStatus(base, 401)
	if StatusCode(err) != http.StatusUnauthorized || !Reached(err) {
		t.Errorf("status 401: got %v", err)
	}
	if !errors.Is(err, base) {
		t.Error("classified error should unwrap to the original")
	}
}

func TestErrProviderUnavailable_Message(t *testing.T) {
	e := &ErrProviderUnavailable{StatusCode: 500}
	if got := e.Error(); got != "LLM provider returned 500 Internal Server Error" {
		t.Errorf("unexpected message %q", got)
	}
	e = &ErrProviderUnavailable{}
	if got := e.Error(); got != "LLM provider unavailable" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "openai without key",
			cfg:     Config{Provider: "openai"},
			wantErr: true,
		},
		{
			name:    "openai with key",
			cfg:     Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "anthropic without key",
			cfg:     Config{Provider: "anthropic"},
			wantErr: true,
		},
		{
			name:    "gemini with key",
			cfg:     Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "g"}},
			wantErr: false,
		},
		{
			name:    "openrouter without key",
			cfg:     Config{Provider: "openrouter"},
			wantErr: true,
		},
		{
			name:    "mock needs no key",
			cfg:     Config{Provider: "mock"},
			wantErr: false,
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "unknown"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func clearLLMEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"YAYI_LLM_PROVIDER", "YAYI_LLM_TIMEOUT",
		"YAYI_OPENAI_API_KEY", "YAYI_OPENAI_MODEL", "YAYI_OPENAI_BASE_URL",
		"YAYI_ANTHROPIC_API_KEY", "YAYI_ANTHROPIC_MODEL",
		"YAYI_GEMINI_API_KEY", "YAYI_GEMINI_MODEL",
		"YAYI_OPENROUTER_API_KEY", "YAYI_OPENROUTER_MODEL",
		"OPENAI_API_KEY", "ANTHROPIC_API_KEY", "GEMINI_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("YAYI_OPENAI_API_KEY", "sk-yayi")
	t.Setenv("YAYI_OPENAI_BASE_URL", "https://llm.example.com/v1")
	t.Setenv("YAYI_LLM_TIMEOUT", "15s")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-yayi" || cfg.OpenAI.BaseURL != "https://llm.example.com/v1" {
		t.Errorf("openai config = %+v", cfg.OpenAI)
	}
	if cfg.OpenAI.Model != "gpt-3.5-turbo" {
		t.Errorf("default model = %q", cfg.OpenAI.Model)
	}
	if cfg.Timeout != 15*time.Second {
		t.Errorf("timeout = %v, want 15s", cfg.Timeout)
	}
}

func TestConfigFromEnv_BadTimeoutKeepsDefault(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("YAYI_LLM_TIMEOUT", "soon")
	if cfg := ConfigFromEnv(); cfg.Timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
}

func TestResolveConfig(t *testing.T) {
	t.Run("nothing set", func(t *testing.T) {
		clearLLMEnv(t)
		if _, err := ResolveConfig(); !errors.Is(err, ErrNotConfigured) {
			t.Fatalf("expected ErrNotConfigured, got %v", err)
		}
	})

	t.Run("discovery order", func(t *testing.T) {
		clearLLMEnv(t)
		t.Setenv("GEMINI_API_KEY", "g")
		t.Setenv("ANTHROPIC_API_KEY", "a")
		cfg, err := ResolveConfig()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Provider != "anthropic" || cfg.Anthropic.APIKey != "a" {
			t.Fatalf("expected anthropic from discovery, got %+v", cfg.Provider)
		}
	})

	t.Run("pinned provider does not fall back", func(t *testing.T) {
		clearLLMEnv(t)
		t.Setenv("YAYI_LLM_PROVIDER", "gemini")
		t.Setenv("OPENAI_API_KEY", "o")
		if _, err := ResolveConfig(); err == nil {
			t.Fatal("expected validation error for pinned provider without key")
		}
	})

	t.Run("mock", func(t *testing.T) {
		clearLLMEnv(t)
		t.Setenv("YAYI_LLM_PROVIDER", "mock")
		cfg, err := ResolveConfig()
		if err != nil || cfg.Provider != "mock" {
			t.Fatalf("got %+v, %v", cfg.Provider, err)
		}
	})
}

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: "mock"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.(*MockProvider); !ok {
		t.Fatalf("nil repo should leave provider undecorated, got %T", p)
	}

	if _, err := NewProvider(context.Background(), Config{Provider: "openai"}, nil); err == nil {
		t.Fatal("expected error for openai without key")
	}
	if _, err := NewProvider(context.Background(), Config{Provider: "nope"}, nil); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gpt-3.5-turbo")
	if c == nil {
		t.Fatal("expected pricing for gpt-3.5-turbo")
	}
	if got := c.Cost(1_000_000, 1_000_000); got != 2.0 {
		t.Errorf("cost = %v, want 2.0", got)
	}
	if LookupCost("openai/gpt-3.5-turbo") == nil {
		t.Error("expected OpenRouter-style id to resolve")
	}
	if LookupCost("mock") != nil {
		t.Error("expected nil for unknown model")
	}
}
