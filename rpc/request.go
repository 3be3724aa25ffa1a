// Package rpc implements a Solana JSON-RPC 2.0 client over a pluggable
// HTTP transport.
package rpc

import "sync/atomic"

// requestID issues monotonically increasing request ids so responses can
// be correlated even when calls are multiplexed over one connection.
var requestID atomic.Uint64

// Request is a JSON-RPC 2.0 request envelope.
type Request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params,omitempty"`
}

// NewRequest creates a request envelope for method with a fresh id.
func NewRequest(method string) *Request {
	return &Request{
		JSONRPC: "2.0",
		ID:      requestID.Add(1),
		Method:  method,
	}
}

// Param appends a parameter in call order and returns the request for
// chaining.
func (r *Request) Param(v any) *Request {
	r.Params = append(r.Params, v)
	return r
}

// RPCMethod returns the method name. Implements the hook used by
// observability decorators to label metrics without inspecting the body.
func (r *Request) RPCMethod() string {
	return r.Method
}
