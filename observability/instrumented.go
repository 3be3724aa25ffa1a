package observability

import (
	"context"
	"time"

	"solana-web-sdk/transport"
)

// methodNamer is implemented by request bodies that expose their
// JSON-RPC method name, such as rpc.Request.
type methodNamer interface {
	RPCMethod() string
}

// InstrumentedTransport wraps a transport and records per-method call
// counts and latencies. It composes with RetryTransport in either
// order; wrapping the retry layer counts each logical call once,
// wrapping inside it counts every attempt.
type InstrumentedTransport struct {
	next    transport.Client
	metrics *Metrics
}

var _ transport.Client = (*InstrumentedTransport)(nil)

// NewInstrumentedTransport decorates next with the given metrics.
func NewInstrumentedTransport(next transport.Client, metrics *Metrics) *InstrumentedTransport {
	return &InstrumentedTransport{next: next, metrics: metrics}
}

// PostJSON implements transport.Client.
func (t *InstrumentedTransport) PostJSON(ctx context.Context, url string, body, out any) error {
	method := "unknown"
	if m, ok := body.(methodNamer); ok {
		method = m.RPCMethod()
	}

	start := time.Now()
	err := t.next.PostJSON(ctx, url, body, out)
	t.observe(method, start, err)
	return err
}

// GetJSON implements transport.Client.
func (t *InstrumentedTransport) GetJSON(ctx context.Context, url string, out any) error {
	start := time.Now()
	err := t.next.GetJSON(ctx, url, out)
	t.observe("http_get", start, err)
	return err
}

func (t *InstrumentedTransport) observe(method string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	t.metrics.RPCCallsTotal.WithLabelValues(method, status).Inc()
	t.metrics.RPCCallLatency.WithLabelValues(method).Observe(time.Since(start).Seconds())
}
