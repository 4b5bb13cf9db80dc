package llm

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"
)

// DefaultTimeout bounds a single provider call when Config.Timeout is unset.
const DefaultTimeout = 60 * time.Second

type reachKey struct{}

// reachTracker records the last HTTP status seen for one Generate call.
type reachTracker struct {
	status atomic.Int32
}

func (r *reachTracker) Status() int {
	return int(r.status.Load())
}

// trackReach attaches a fresh tracker to ctx. Requests made with the
// returned context through a reachTransport report into it.
func trackReach(ctx context.Context) (context.Context, *reachTracker) {
	tr := &reachTracker{}
	return context.WithValue(ctx, reachKey{}, tr), tr
}

// reachTransport notes the response status of each round trip on the
// request context's tracker.
type reachTransport struct {
	base http.RoundTripper
}

func (t *reachTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err == nil && resp != nil {
		if tr, ok := req.Context().Value(reachKey{}).(*reachTracker); ok {
			tr.status.Store(int32(resp.StatusCode))
		}
	}
	return resp, err
}

// newHTTPClient returns the client every SDK-backed provider uses.
func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: &reachTransport{base: http.DefaultTransport},
	}
}
