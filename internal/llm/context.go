package llm

import "context"

type contextKey string

const (
	purposeKey contextKey = "llm_purpose"
	sessionKey contextKey = "llm_session"
)

// WithPurpose attaches a purpose label to the context for event logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}

// WithSession tags the context with a quiz session id for event logging.
func WithSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionKey, sessionID)
}

// SessionFrom extracts the session id from the context, or "".
func SessionFrom(ctx context.Context) string {
	v, _ := ctx.Value(sessionKey).(string)
	return v
}
