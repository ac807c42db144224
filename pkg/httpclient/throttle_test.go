package httpclient

import (
	"context"
	"errors"
	"testing"
)

type stubClient struct {
	calls int
	body  string
}

type stubResponse struct {
	body       []byte
	statusCode int
}

func (r stubResponse) Body() []byte    { return r.body }
func (r stubResponse) StatusCode() int { return r.statusCode }

func (s *stubClient) Get(ctx context.Context, url string, headers map[string]string) (Response, error) {
	s.calls++
	return stubResponse{body: []byte(s.body), statusCode: 200}, nil
}

func TestThrottledClientForwards(t *testing.T) {
	inner := &stubClient{body: "payload"}
	client := NewThrottledClient(inner, 100, 1)

	resp, err := client.Get(context.Background(), "http://example.com", nil)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(resp.Body()) != "payload" || resp.StatusCode() != 200 {
		t.Errorf("expected forwarded response, got %d %q", resp.StatusCode(), resp.Body())
	}
	if inner.calls != 1 {
		t.Errorf("expected 1 inner call, got %d", inner.calls)
	}
}

func TestThrottledClientCanceledWait(t *testing.T) {
	inner := &stubClient{}
	client := NewThrottledClient(inner, 0.001, 1)

	// Drain the single burst token, then a canceled context must fail the
	// wait before the inner client is reached.
	if _, err := client.Get(context.Background(), "http://example.com", nil); err != nil {
		t.Fatalf("first Get returned error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Get(ctx, "http://example.com", nil)
	if err == nil {
		t.Fatal("expected error from canceled wait")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled cause, got %v", err)
	}
	if inner.calls != 1 {
		t.Errorf("expected inner client untouched by canceled wait, got %d calls", inner.calls)
	}
}

func TestNewThrottledClientMinimumBurst(t *testing.T) {
	inner := &stubClient{}
	client := NewThrottledClient(inner, 100, 0)

	if _, err := client.Get(context.Background(), "http://example.com", nil); err != nil {
		t.Fatalf("Get returned error with zero burst: %v", err)
	}
}
