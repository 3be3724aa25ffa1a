package transport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Default retry policy values.
const (
	DefaultMaxRetries  = 3
	DefaultRetryDelay  = 1 * time.Second
	DefaultMaxDelay    = 10 * time.Second
	DefaultBackoffMult = 2.0
)

// RetryTransport decorates a Client with bounded retries and exponential
// backoff. Only failures that can plausibly succeed on a later attempt are
// retried: send failures, unreadable responses, 429 and 5xx statuses.
// Encode/decode failures and other 4xx statuses fail immediately.
type RetryTransport struct {
	next        Client
	maxRetries  int
	retryDelay  time.Duration
	maxDelay    time.Duration
	backoffMult float64
}

// RetryOption configures a RetryTransport.
type RetryOption func(*RetryTransport)

// WithMaxRetries sets the maximum number of retry attempts.
func WithMaxRetries(n int) RetryOption {
	return func(t *RetryTransport) {
		t.maxRetries = n
	}
}

// WithRetryDelay sets the initial delay before the first retry.
func WithRetryDelay(d time.Duration) RetryOption {
	return func(t *RetryTransport) {
		t.retryDelay = d
	}
}

// WithMaxDelay caps the backoff delay.
func WithMaxDelay(d time.Duration) RetryOption {
	return func(t *RetryTransport) {
		t.maxDelay = d
	}
}

// NewRetryTransport wraps next with the retry policy.
func NewRetryTransport(next Client, opts ...RetryOption) *RetryTransport {
	t := &RetryTransport{
		next:        next,
		maxRetries:  DefaultMaxRetries,
		retryDelay:  DefaultRetryDelay,
		maxDelay:    DefaultMaxDelay,
		backoffMult: DefaultBackoffMult,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// PostJSON implements Client.
func (t *RetryTransport) PostJSON(ctx context.Context, url string, body, out any) error {
	return t.retry(ctx, func() error {
		return t.next.PostJSON(ctx, url, body, out)
	})
}

// GetJSON implements Client.
func (t *RetryTransport) GetJSON(ctx context.Context, url string, out any) error {
	return t.retry(ctx, func() error {
		return t.next.GetJSON(ctx, url, out)
	})
}

func (t *RetryTransport) retry(ctx context.Context, call func() error) error {
	delay := t.retryDelay
	var lastErr error

	for attempt := 0; attempt <= t.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
			delay = time.Duration(float64(delay) * t.backoffMult)
			if delay > t.maxDelay {
				delay = t.maxDelay
			}
		}

		err := call()
		if err == nil {
			return nil
		}
		if !retryable(err) {
			return err
		}
		lastErr = err
	}

	return fmt.Errorf("max retries exceeded: %w", lastErr)
}

func retryable(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Status == http.StatusTooManyRequests || statusErr.Status >= 500
	}
	return errors.Is(err, ErrRequest) || errors.Is(err, ErrResponse)
}
