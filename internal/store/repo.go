package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // id > After
	Before  int64     // id < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // exact match when set
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	SessionID    string
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	Reached      bool // the remote service produced an HTTP response
	StatusCode   int
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	ID        int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStat aggregates calls and tokens for one purpose.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	Failures     int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates tokens for one model, for cost estimates.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one event, or nil if id does not exist.
	GetLLMEvent(ctx context.Context, id int64) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates events per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates events per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
