package types

import (
	"bytes"
	"fmt"

	"github.com/mr-tron/base58"
)

// SignatureLength is the raw byte length of a transaction signature.
const SignatureLength = 64

// Signature is a 64-byte Solana transaction signature.
type Signature [SignatureLength]byte

// NewSignature creates a signature from a 64-byte array.
func NewSignature(b [SignatureLength]byte) Signature {
	return Signature(b)
}

// SignatureFromBase58 parses a base58-encoded signature.
func SignatureFromBase58(s string) (Signature, error) {
	var sig Signature
	raw, err := base58.Decode(s)
	if err != nil {
		return sig, fmt.Errorf("signature: %w: %q", ErrInvalidEncoding, s)
	}
	if len(raw) != SignatureLength {
		return sig, fmt.Errorf("signature: %w: expected %d bytes, got %d", ErrInvalidLength, SignatureLength, len(raw))
	}
	copy(sig[:], raw)
	return sig, nil
}

// Bytes returns a copy of the raw signature bytes.
func (s Signature) Bytes() []byte {
	return s[:]
}

// String returns the base58 text form.
func (s Signature) String() string {
	return base58.Encode(s[:])
}

// IsZero reports whether the signature is all zero bytes.
func (s Signature) IsZero() bool {
	return s == Signature{}
}

// Compare orders signatures byte-lexicographically.
func (s Signature) Compare(other Signature) int {
	return bytes.Compare(s[:], other[:])
}

// MarshalText implements encoding.TextMarshaler using the base58 form.
func (s Signature) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Signature) UnmarshalText(text []byte) error {
	parsed, err := SignatureFromBase58(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
