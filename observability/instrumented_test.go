package observability

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTransport struct {
	err   error
	calls int
}

func (f *fakeTransport) PostJSON(_ context.Context, _ string, _, _ any) error {
	f.calls++
	return f.err
}

func (f *fakeTransport) GetJSON(_ context.Context, _ string, _ any) error {
	f.calls++
	return f.err
}

type namedBody struct{ method string }

func (b namedBody) RPCMethod() string { return b.method }

func TestInstrumentedTransportCountsCalls(t *testing.T) {
	metrics := NewMetrics("test")
	fake := &fakeTransport{}
	tr := NewInstrumentedTransport(fake, metrics)

	require.NoError(t, tr.PostJSON(context.Background(), "http://node", namedBody{"getBalance"}, nil))
	require.NoError(t, tr.PostJSON(context.Background(), "http://node", namedBody{"getBalance"}, nil))
	require.NoError(t, tr.PostJSON(context.Background(), "http://node", namedBody{"getSlot"}, nil))

	assert.Equal(t, 3, fake.calls)
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.RPCCallsTotal.WithLabelValues("getBalance", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.RPCCallsTotal.WithLabelValues("getSlot", "ok")))
}

func TestInstrumentedTransportCountsErrors(t *testing.T) {
	metrics := NewMetrics("test")
	fake := &fakeTransport{err: errors.New("down")}
	tr := NewInstrumentedTransport(fake, metrics)

	err := tr.PostJSON(context.Background(), "http://node", namedBody{"getHealth"}, nil)
	assert.ErrorContains(t, err, "down")
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.RPCCallsTotal.WithLabelValues("getHealth", "error")))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.RPCCallsTotal.WithLabelValues("getHealth", "ok")))
}

func TestInstrumentedTransportUnknownMethod(t *testing.T) {
	metrics := NewMetrics("test")
	tr := NewInstrumentedTransport(&fakeTransport{}, metrics)

	require.NoError(t, tr.PostJSON(context.Background(), "http://node", map[string]string{"x": "y"}, nil))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.RPCCallsTotal.WithLabelValues("unknown", "ok")))
}

func TestInstrumentedTransportGetJSON(t *testing.T) {
	metrics := NewMetrics("test")
	tr := NewInstrumentedTransport(&fakeTransport{}, metrics)

	require.NoError(t, tr.GetJSON(context.Background(), "http://node/health", nil))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.RPCCallsTotal.WithLabelValues("http_get", "ok")))
}

func TestMetricsHandler(t *testing.T) {
	metrics := NewMetrics("test")
	metrics.RPCCallsTotal.WithLabelValues("getSlot", "ok").Inc()

	srv := httptest.NewServer(metrics.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSeparateRegistries(t *testing.T) {
	// Two Metrics instances must not collide on registration.
	a := NewMetrics("test")
	b := NewMetrics("test")
	a.RPCCallsTotal.WithLabelValues("getSlot", "ok").Inc()
	assert.Equal(t, 0.0, testutil.ToFloat64(b.RPCCallsTotal.WithLabelValues("getSlot", "ok")))
}
