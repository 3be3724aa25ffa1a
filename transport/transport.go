// Package transport provides the HTTP layer used by the RPC client. The
// Client interface decouples the RPC layer from the concrete backend so the
// same client runs against net/http natively, the browser fetch API under
// js/wasm, or a test double.
package transport

import (
	"context"
	"errors"
	"fmt"
)

// Client is the capability the RPC layer needs from an HTTP stack.
// Implementations must translate failures into the shared error taxonomy
// below so callers are backend-agnostic.
type Client interface {
	// PostJSON sends body as a JSON POST to url and decodes the JSON
	// response into out.
	PostJSON(ctx context.Context, url string, body, out any) error

	// GetJSON sends a GET to url and decodes the JSON response into out.
	GetJSON(ctx context.Context, url string, out any) error
}

// Transport error taxonomy.
var (
	// ErrRequest indicates the request never completed: connection,
	// DNS or send failure.
	ErrRequest = errors.New("request failed")
	// ErrResponse indicates the response body could not be read.
	ErrResponse = errors.New("response read failed")
	// ErrEncode indicates the request body could not be serialized.
	ErrEncode = errors.New("request encode failed")
	// ErrDecode indicates the response body could not be decoded into
	// the expected type.
	ErrDecode = errors.New("response decode failed")
)

// StatusError is returned when the server responds with a non-2xx status.
// Body carries the raw response body, best effort, empty if unreadable.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http status %d: %s", e.Status, e.Body)
}
