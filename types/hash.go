package types

import (
	"bytes"
	"fmt"

	"github.com/mr-tron/base58"
)

// HashLength is the raw byte length of a hash.
const HashLength = 32

// Hash is a 32-byte Solana hash, used for blockhashes.
type Hash [HashLength]byte

// NewHash creates a hash from a 32-byte array.
func NewHash(b [HashLength]byte) Hash {
	return Hash(b)
}

// HashFromBase58 parses a base58-encoded hash.
func HashFromBase58(s string) (Hash, error) {
	var h Hash
	raw, err := base58.Decode(s)
	if err != nil {
		return h, fmt.Errorf("hash: %w: %q", ErrInvalidEncoding, s)
	}
	if len(raw) != HashLength {
		return h, fmt.Errorf("hash: %w: expected %d bytes, got %d", ErrInvalidLength, HashLength, len(raw))
	}
	copy(h[:], raw)
	return h, nil
}

// Bytes returns a copy of the raw hash bytes.
func (h Hash) Bytes() []byte {
	return h[:]
}

// String returns the base58 text form.
func (h Hash) String() string {
	return base58.Encode(h[:])
}

// IsZero reports whether the hash is all zero bytes.
func (h Hash) IsZero() bool {
	return h == Hash{}
}

// Compare orders hashes byte-lexicographically.
func (h Hash) Compare(other Hash) int {
	return bytes.Compare(h[:], other[:])
}

// MarshalText implements encoding.TextMarshaler using the base58 form.
func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Hash) UnmarshalText(text []byte) error {
	parsed, err := HashFromBase58(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
