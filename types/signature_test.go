package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignatureBase58RoundTrip(t *testing.T) {
	var raw [64]byte
	for i := range raw {
		raw[i] = byte(255 - i)
	}
	sig := NewSignature(raw)

	decoded, err := SignatureFromBase58(sig.String())
	require.NoError(t, err)
	assert.Equal(t, sig, decoded)
}

func TestSignatureFromBase58_Rejects32Bytes(t *testing.T) {
	// A pubkey-length string must not parse as a signature.
	pk := NewPubkey([32]byte{1})
	_, err := SignatureFromBase58(pk.String())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestSignatureFromBase58_InvalidAlphabet(t *testing.T) {
	_, err := SignatureFromBase58("0xdeadbeef")
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}
