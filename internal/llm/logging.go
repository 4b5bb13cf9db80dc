package llm

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/abstractlab/yayi/internal/store"
)

// LoggingProvider is a decorator that records every LLM request as an event.
type LoggingProvider struct {
	inner     Provider
	name      string
	eventRepo store.EventRepo
}

// WithLogging wraps a Provider with event logging. A nil repo disables
// recording and returns p unchanged.
func WithLogging(p Provider, name string, repo store.EventRepo) Provider {
	if repo == nil {
		return p
	}
	return &LoggingProvider{inner: p, name: name, eventRepo: repo}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		SessionID:   SessionFrom(ctx),
		Provider:    l.name,
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		Reached:     Reached(err),
		StatusCode:  StatusCode(err),
		RequestBody: serializeRequest(req),
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		if resp.Model != "" {
			data.Model = resp.Model
		}
		data.ResponseBody = resp.Text
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// The request outcome stands even when the event cannot be written.
	// A cancelled ctx must not drop the record either.
	if logErr := l.eventRepo.AppendLLMRequest(context.WithoutCancel(ctx), data); logErr != nil {
		log.Printf("warning: failed to log LLM request event: %v", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		b.WriteString(fmt.Sprintf("[%s]\n", m.Role))
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b, "[params] max_tokens=%d temperature=%.2f top_p=%.2f\n",
		req.MaxTokens, req.Temperature, req.TopP)

	return b.String()
}
