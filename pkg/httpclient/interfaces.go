package httpclient

import "context"

// Response is the minimal view of an HTTP response the weather client needs.
type Response interface {
	Body() []byte
	StatusCode() int
}

// Client abstracts the HTTP transport so callers can inject mocks or wrap
// the real transport with decorators.
type Client interface {
	Get(ctx context.Context, url string, headers map[string]string) (Response, error)
}
