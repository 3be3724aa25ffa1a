// Package types defines the core Solana value types: public keys, hashes
// and signatures with their base58 text encoding.
package types

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
)

// PubkeyLength is the raw byte length of a public key.
const PubkeyLength = 32

// Decode errors shared by all identifier types.
var (
	// ErrInvalidEncoding indicates input outside the base58 alphabet.
	ErrInvalidEncoding = errors.New("invalid base58 encoding")
	// ErrInvalidLength indicates a decoded byte count that does not match
	// the fixed length of the target type.
	ErrInvalidLength = errors.New("invalid decoded length")
)

// Pubkey is a 32-byte Solana public key.
type Pubkey [PubkeyLength]byte

// NewPubkey creates a pubkey from a 32-byte array.
func NewPubkey(b [PubkeyLength]byte) Pubkey {
	return Pubkey(b)
}

// PubkeyFromBase58 parses a base58-encoded public key.
func PubkeyFromBase58(s string) (Pubkey, error) {
	var pk Pubkey
	raw, err := base58.Decode(s)
	if err != nil {
		return pk, fmt.Errorf("pubkey: %w: %q", ErrInvalidEncoding, s)
	}
	if len(raw) != PubkeyLength {
		return pk, fmt.Errorf("pubkey: %w: expected %d bytes, got %d", ErrInvalidLength, PubkeyLength, len(raw))
	}
	copy(pk[:], raw)
	return pk, nil
}

// MustPubkey parses a base58-encoded public key and panics on failure.
// Intended for package-level constants and tests.
func MustPubkey(s string) Pubkey {
	pk, err := PubkeyFromBase58(s)
	if err != nil {
		panic(err)
	}
	return pk
}

// Bytes returns a copy of the raw key bytes.
func (p Pubkey) Bytes() []byte {
	return p[:]
}

// String returns the base58 text form.
func (p Pubkey) String() string {
	return base58.Encode(p[:])
}

// IsZero reports whether the key is all zero bytes.
func (p Pubkey) IsZero() bool {
	return p == Pubkey{}
}

// Compare orders keys byte-lexicographically.
func (p Pubkey) Compare(other Pubkey) int {
	return bytes.Compare(p[:], other[:])
}

// Less reports whether p orders before other.
func (p Pubkey) Less(other Pubkey) bool {
	return p.Compare(other) < 0
}

// MarshalText implements encoding.TextMarshaler using the base58 form.
func (p Pubkey) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Pubkey) UnmarshalText(text []byte) error {
	pk, err := PubkeyFromBase58(string(text))
	if err != nil {
		return err
	}
	*p = pk
	return nil
}
