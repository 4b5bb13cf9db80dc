// Package commentary asks an LLM for a short humorous take on quiz results,
// falling back to fixed text whenever the call does not produce one.
package commentary

import (
	"context"
	"log"
	"strings"

	"github.com/abstractlab/yayi/internal/llm"
	"github.com/abstractlab/yayi/internal/quiz"
	"github.com/abstractlab/yayi/internal/scoring"
)

// Purpose tags commentary calls in the LLM event log.
const Purpose = "commentary"

// Fallback texts.
const (
	// FallbackRemote is shown when the service answered but gave no usable text.
	FallbackRemote = "The philosopher opens his mouth, looks at your scores, says nothing, and takes one bite of a 15-yuan box lunch. For repression like this, a week of manual labour is recommended."

	// FallbackUnreachable is shown when the service could not be reached at all.
	FallbackUnreachable = "System logic collapsed. Bottom-layer logic damaged. You are probably too abstract; even the AI is scared of you. Pull yourself together and go get a box lunch from a street stall."
)

// Source says where a Commentary's text came from.
type Source string

const (
	SourceGenerated           Source = "generated"
	SourceFallbackRemote      Source = "fallback-remote"
	SourceFallbackUnreachable Source = "fallback-unreachable"
)

// Commentary is the text shown on the result screen.
type Commentary struct {
	Text   string `json:"text"`
	Source Source `json:"source"`
}

// Requester produces commentary for a set of scores.
type Requester struct {
	provider llm.Provider
	cfg      Config
}

// New creates a Requester. A nil provider is allowed; every request then
// returns FallbackUnreachable.
func New(provider llm.Provider, cfg Config) *Requester {
	return &Requester{provider: provider, cfg: cfg}
}

// Request makes one attempt at generating commentary. It always returns
// non-empty text and never an error.
func (r *Requester) Request(ctx context.Context, mode quiz.Mode, scores scoring.Scores) Commentary {
	if r == nil || r.provider == nil {
		return Commentary{Text: FallbackUnreachable, Source: SourceFallbackUnreachable}
	}

	ctx = llm.WithPurpose(ctx, Purpose)

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPrompt(mode, scores, r.language())},
		},
		MaxTokens:   r.cfg.MaxTokens,
		Temperature: r.cfg.Temperature,
		TopP:        r.cfg.TopP,
	}

	resp, err := r.provider.Generate(ctx, req)
	if err != nil {
		log.Printf("commentary: %v", err)
		if llm.Reached(err) {
			return Commentary{Text: FallbackRemote, Source: SourceFallbackRemote}
		}
		return Commentary{Text: FallbackUnreachable, Source: SourceFallbackUnreachable}
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		log.Printf("commentary: empty reply from %s", r.provider.ModelID())
		return Commentary{Text: FallbackRemote, Source: SourceFallbackRemote}
	}
	return Commentary{Text: text, Source: SourceGenerated}
}

func (r *Requester) language() string {
	if r.cfg.Language == "" {
		return "English"
	}
	return r.cfg.Language
}
