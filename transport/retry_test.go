package transport

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestRetryTransport_RecoversFromRateLimit(t *testing.T) {
	var attempts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"value":"done"}`))
	}))
	defer server.Close()

	tr := NewRetryTransport(NewHTTPTransport(),
		WithMaxRetries(3),
		WithRetryDelay(10*time.Millisecond),
	)

	var out echoPayload
	if err := tr.PostJSON(context.Background(), server.URL, echoPayload{}, &out); err != nil {
		t.Fatalf("PostJSON: %v", err)
	}
	if out.Value != "done" {
		t.Errorf("expected done, got %s", out.Value)
	}
	if attempts.Load() != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts.Load())
	}
}

func TestRetryTransport_NoRetryOnClientError(t *testing.T) {
	var attempts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("bad request"))
	}))
	defer server.Close()

	tr := NewRetryTransport(NewHTTPTransport(),
		WithMaxRetries(3),
		WithRetryDelay(time.Millisecond),
	)

	var out echoPayload
	err := tr.PostJSON(context.Background(), server.URL, echoPayload{}, &out)

	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Status != http.StatusBadRequest {
		t.Fatalf("expected 400 StatusError, got %v", err)
	}
	if attempts.Load() != 1 {
		t.Errorf("expected exactly 1 attempt, got %d", attempts.Load())
	}
}

func TestRetryTransport_ExhaustsRetries(t *testing.T) {
	var attempts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	tr := NewRetryTransport(NewHTTPTransport(),
		WithMaxRetries(2),
		WithRetryDelay(time.Millisecond),
		WithMaxDelay(5*time.Millisecond),
	)

	var out echoPayload
	err := tr.PostJSON(context.Background(), server.URL, echoPayload{}, &out)
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Status != http.StatusServiceUnavailable {
		t.Fatalf("expected wrapped 503 StatusError, got %v", err)
	}
	if attempts.Load() != 3 {
		t.Errorf("expected 3 attempts (1 + 2 retries), got %d", attempts.Load())
	}
}

func TestRetryTransport_ContextCancelsBackoff(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	tr := NewRetryTransport(NewHTTPTransport(),
		WithMaxRetries(5),
		WithRetryDelay(time.Hour),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	var out echoPayload
	err := tr.PostJSON(ctx, server.URL, echoPayload{}, &out)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context deadline error, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("backoff did not honor context cancellation, waited %v", elapsed)
	}
}

func TestRetryTransport_NoRetryOnDecodeError(t *testing.T) {
	var attempts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	tr := NewRetryTransport(NewHTTPTransport(), WithRetryDelay(time.Millisecond))

	var out echoPayload
	err := tr.PostJSON(context.Background(), server.URL, echoPayload{}, &out)
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
	if attempts.Load() != 1 {
		t.Errorf("expected 1 attempt, got %d", attempts.Load())
	}
}
