package rpc

import (
	"encoding/json"
	"fmt"
)

// Response is a JSON-RPC 2.0 response envelope. Exactly one of Result and
// Error is populated by a conforming node.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *NodeError      `json:"error,omitempty"`
}

// Well-known JSON-RPC 2.0 error codes.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// NodeError is an error reported by the node inside the JSON-RPC error
// field.
type NodeError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// IsMethodNotFound reports whether the node rejected the method name.
func (e *NodeError) IsMethodNotFound() bool {
	return e.Code == CodeMethodNotFound
}

// IsInvalidRequest reports whether the node rejected the request envelope.
func (e *NodeError) IsInvalidRequest() bool {
	return e.Code == CodeInvalidRequest
}

// IsInternal reports whether the node failed internally.
func (e *NodeError) IsInternal() bool {
	return e.Code == CodeInternalError
}
