package llm

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the provider answered but the reply could
// not be used: an undecodable body, no choices, or no text.
type ErrInvalidResponse struct {
	Content string
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider failed. StatusCode is the
// HTTP status when the provider answered, or 0 when it was never reached.
type ErrProviderUnavailable struct {
	StatusCode int
	Err        error
}

func (e *ErrProviderUnavailable) Error() string {
	prefix := "LLM provider unavailable"
	if e.StatusCode != 0 {
		prefix = fmt.Sprintf("LLM provider returned %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", prefix, e.Err)
	}
	return prefix
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the response was truncated because it
// hit the MaxTokens limit.
type ErrMaxTokensExceeded struct {
	Content string
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}

// Reached reports whether err came from a provider that produced a
// response. Errors of unknown type count as not reached.
func Reached(err error) bool {
	if err == nil {
		return true
	}
	var (
		rl  *ErrRateLimit
		inv *ErrInvalidResponse
		mt  *ErrMaxTokensExceeded
		pu  *ErrProviderUnavailable
	)
	switch {
	case errors.As(err, &rl), errors.As(err, &inv), errors.As(err, &mt):
		return true
	case errors.As(err, &pu):
		return pu.StatusCode != 0
	default:
		return false
	}
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var pu *ErrProviderUnavailable
	if errors.As(err, &pu) {
		return pu.StatusCode
	}
	var rl *ErrRateLimit
	if errors.As(err, &rl) {
		return http.StatusTooManyRequests
	}
	return 0
}

// classifyStatus maps a transport-level failure to a typed error using the
// HTTP status observed for the request (0 if no response arrived).
func classifyStatus(err error, status int) error {
	switch {
	case status == 0:
		return &ErrProviderUnavailable{Err: err}
	case status == http.StatusTooManyRequests:
		return &ErrRateLimit{Err: err}
	case status >= 200 && status < 300:
		return &ErrInvalidResponse{Err: err}
	default:
		return &ErrProviderUnavailable{StatusCode: status, Err: err}
	}
}
