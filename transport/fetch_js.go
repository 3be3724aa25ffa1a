//go:build js && wasm

package transport

import (
	"context"
	"net/http"
)

// Under js/wasm the Go runtime routes net/http through the browser fetch
// API. These magic header keys are consumed by the wasm RoundTripper and
// never sent on the wire.
const (
	fetchModeHeader        = "js.fetch:mode"
	fetchCredentialsHeader = "js.fetch:credentials"
)

// FetchTransport is the browser backend. It shares the native round-trip
// logic and error taxonomy; only the fetch options differ.
type FetchTransport struct {
	client *http.Client
	header http.Header
}

// NewFetchTransport creates a browser fetch transport. Requests are issued
// in CORS mode without credentials, the defaults the fetch API uses for
// cross-origin JSON-RPC endpoints.
func NewFetchTransport() *FetchTransport {
	header := make(http.Header)
	header.Set(fetchModeHeader, "cors")
	header.Set(fetchCredentialsHeader, "omit")

	// No Timeout: the browser owns request lifetimes, cancellation is
	// driven by the context.
	return &FetchTransport{
		client: &http.Client{},
		header: header,
	}
}

// PostJSON implements Client.
func (t *FetchTransport) PostJSON(ctx context.Context, url string, body, out any) error {
	return doJSON(ctx, t.client, http.MethodPost, url, t.header, body, out)
}

// GetJSON implements Client.
func (t *FetchTransport) GetJSON(ctx context.Context, url string, out any) error {
	return doJSON(ctx, t.client, http.MethodGet, url, t.header, nil, out)
}
