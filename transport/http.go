package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single HTTP round trip when no custom
// http.Client is supplied.
const DefaultTimeout = 30 * time.Second

// HTTPTransport is the native backend built on net/http.
type HTTPTransport struct {
	client *http.Client
	header http.Header
}

// Option configures a transport backend.
type Option func(*HTTPTransport)

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(t *HTTPTransport) {
		t.client = client
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(t *HTTPTransport) {
		t.client.Timeout = d
	}
}

// WithHeader adds a header sent on every request.
func WithHeader(key, value string) Option {
	return func(t *HTTPTransport) {
		t.header.Set(key, value)
	}
}

// NewHTTPTransport creates a native HTTP transport.
func NewHTTPTransport(opts ...Option) *HTTPTransport {
	t := &HTTPTransport{
		client: &http.Client{Timeout: DefaultTimeout},
		header: make(http.Header),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// PostJSON implements Client.
func (t *HTTPTransport) PostJSON(ctx context.Context, url string, body, out any) error {
	return doJSON(ctx, t.client, http.MethodPost, url, t.header, body, out)
}

// GetJSON implements Client.
func (t *HTTPTransport) GetJSON(ctx context.Context, url string, out any) error {
	return doJSON(ctx, t.client, http.MethodGet, url, t.header, nil, out)
}

// doJSON performs one JSON round trip and maps every failure onto the
// package error taxonomy. Shared by the native and fetch backends.
func doJSON(ctx context.Context, hc *http.Client, method, url string, extra http.Header, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrEncode, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequest, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	for key, values := range extra {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequest, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return &StatusError{Status: resp.StatusCode}
		}
		return fmt.Errorf("%w: %v", ErrResponse, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Status: resp.StatusCode, Body: string(respBody)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}
