package httpclient

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// ThrottledClient wraps a Client with a token bucket so requests respect a
// provider's per-minute quota. The wait honors context cancellation.
type ThrottledClient struct {
	client  Client
	limiter *rate.Limiter
}

// NewThrottledClient builds a throttled wrapper around client. rps is the
// sustained requests per second (fractional values allowed), burst the
// number of requests that may go out back to back.
func NewThrottledClient(client Client, rps float64, burst int) *ThrottledClient {
	if burst < 1 {
		burst = 1
	}
	return &ThrottledClient{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Get waits for a token, then forwards to the wrapped client.
func (t *ThrottledClient) Get(ctx context.Context, url string, headers map[string]string) (Response, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("throttle wait: %w", err)
	}
	return t.client.Get(ctx, url, headers)
}

var _ Client = (*ThrottledClient)(nil)
var _ Client = (*RestyClient)(nil)
