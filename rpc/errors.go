package rpc

import "errors"

// Client-level errors. Transport failures and node-reported errors pass
// through wrapped; these sentinels cover malformed payloads inside an
// otherwise successful response.
var (
	// ErrInvalidSignature indicates the node returned a signature string
	// that does not decode to 64 bytes of base58.
	ErrInvalidSignature = errors.New("invalid signature in response")
	// ErrInvalidPubkey indicates the node returned a public key string
	// that does not decode to 32 bytes of base58.
	ErrInvalidPubkey = errors.New("invalid pubkey in response")
	// ErrParse indicates a result payload that could not be interpreted.
	ErrParse = errors.New("parse error")
)
