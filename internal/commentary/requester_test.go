package commentary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/abstractlab/yayi/internal/llm"
	"github.com/abstractlab/yayi/internal/quiz"
	"github.com/abstractlab/yayi/internal/scoring"
)

var sampleScores = scoring.Scores{
	Overall: 50,
	Factors: []scoring.Factor{
		{Dimension: "Anxiety", Score: 50},
		{Dimension: "Hostility", Score: 12.345},
	},
}

func TestRequest_Generated(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "  You are fine, go touch grass.\n"})
	r := New(mock, DefaultConfig())

	c := r.Request(context.Background(), quiz.ModeDetailed, sampleScores)
	if c.Source != SourceGenerated {
		t.Fatalf("source = %q, want generated", c.Source)
	}
	if c.Text != "You are fine, go touch grass." {
		t.Fatalf("text not trimmed: %q", c.Text)
	}

	req, ok := mock.LastRequest()
	if !ok {
		t.Fatal("expected one provider call")
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != llm.RoleUser {
		t.Fatalf("expected a single user message, got %+v", req.Messages)
	}
	if req.Temperature != 0.9 || req.TopP != 0.8 || req.MaxTokens != 400 {
		t.Errorf("unexpected sampling params: %+v", req)
	}
}

func TestRequest_PromptContents(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "ok"})
	New(mock, DefaultConfig()).Request(context.Background(), quiz.ModeDetailed, sampleScores)

	req, _ := mock.LastRequest()
	prompt := req.Messages[0].Content
	for _, want := range []string{
		"detailed (SCL-90 hardcore mode)",
		"50/100",
		"- Anxiety: 50.0",
		"- Hostility: 12.3",
		"above 70",
		"below 30",
		"no Markdown",
		"Reply in English",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestRequest_PromptNormalModeLabel(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "ok"})
	cfg := DefaultConfig()
	cfg.Language = "Chinese"
	New(mock, cfg).Request(context.Background(), quiz.ModeNormal, scoring.Scores{Overall: 33})

	req, _ := mock.LastRequest()
	prompt := req.Messages[0].Content
	if !strings.Contains(prompt, "normal (meme mode)") {
		t.Errorf("prompt missing normal label:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Reply in Chinese") {
		t.Errorf("prompt missing language:\n%s", prompt)
	}
}

func TestRequest_EmptyTextIsRemoteFallback(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "   "})
	c := New(mock, DefaultConfig()).Request(context.Background(), quiz.ModeNormal, sampleScores)
	if c.Source != SourceFallbackRemote || c.Text != FallbackRemote {
		t.Fatalf("got %+v, want remote fallback", c)
	}
}

func TestRequest_ReachedErrorIsRemoteFallback(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrInvalidResponse{}})
	c := New(mock, DefaultConfig()).Request(context.Background(), quiz.ModeNormal, sampleScores)
	if c.Source != SourceFallbackRemote {
		t.Fatalf("got %+v, want remote fallback", c)
	}
}

func TestRequest_UnreachedErrorIsUnreachableFallback(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue: never reached
	c := New(mock, DefaultConfig()).Request(context.Background(), quiz.ModeNormal, sampleScores)
	if c.Source != SourceFallbackUnreachable || c.Text != FallbackUnreachable {
		t.Fatalf("got %+v, want unreachable fallback", c)
	}
}

func TestRequest_NilProvider(t *testing.T) {
	c := New(nil, DefaultConfig()).Request(context.Background(), quiz.ModeNormal, sampleScores)
	if c.Source != SourceFallbackUnreachable {
		t.Fatalf("got %+v, want unreachable fallback", c)
	}

	var r *Requester
	if c := r.Request(context.Background(), quiz.ModeNormal, sampleScores); c.Text == "" {
		t.Fatal("nil requester must still return text")
	}
}

func TestRequest_HTTP500IsRemoteFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"boom","type":"server_error"}}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	p, err := llm.NewOpenAIProvider(llm.OpenAIConfig{
		APIKey:  "test-key",
		Model:   "gpt-3.5-turbo",
		BaseURL: server.URL + "/v1",
	}, 0)
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}

	c := New(p, DefaultConfig()).Request(context.Background(), quiz.ModeDetailed, sampleScores)
	if c.Source != SourceFallbackRemote || c.Text != FallbackRemote {
		t.Fatalf("got %+v, want remote fallback", c)
	}
}

func TestRequest_ClosedServerIsUnreachableFallback(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	p, err := llm.NewOpenAIProvider(llm.OpenAIConfig{
		APIKey:  "test-key",
		Model:   "gpt-3.5-turbo",
		BaseURL: url + "/v1",
	}, 0)
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}

	c := New(p, DefaultConfig()).Request(context.Background(), quiz.ModeNormal, sampleScores)
	if c.Source != SourceFallbackUnreachable {
		t.Fatalf("got %+v, want unreachable fallback", c)
	}
}

func TestRequest_CancelledContextIsUnreachableFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	}))
	defer server.Close()

	p, _ := llm.NewOpenAIProvider(llm.OpenAIConfig{
		APIKey:  "test-key",
		Model:   "gpt-3.5-turbo",
		BaseURL: server.URL + "/v1",
	}, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(p, DefaultConfig()).Request(ctx, quiz.ModeNormal, sampleScores)
	if c.Source != SourceFallbackUnreachable {
		t.Fatalf("got %+v, want unreachable fallback", c)
	}
}

func TestFallbacksDiffer(t *testing.T) {
	if FallbackRemote == FallbackUnreachable || FallbackRemote == "" || FallbackUnreachable == "" {
		t.Fatal("fallback texts must be distinct and non-empty")
	}
}
