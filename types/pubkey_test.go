package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPubkeyBase58RoundTrip(t *testing.T) {
	pk := NewPubkey([32]byte{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
		1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1})

	encoded := pk.String()
	require.NotEmpty(t, encoded)

	decoded, err := PubkeyFromBase58(encoded)
	require.NoError(t, err)
	assert.Equal(t, pk, decoded)
}

func TestPubkeyFromBase58_InvalidAlphabet(t *testing.T) {
	// 'l', 'I', 'O' and '0' are outside the base58 alphabet.
	for _, s := range []string{"invalid", "0000", "OOOO", "IIII", "llll"} {
		_, err := PubkeyFromBase58(s)
		require.Error(t, err, "input %q", s)
		assert.ErrorIs(t, err, ErrInvalidEncoding)
	}
}

func TestPubkeyFromBase58_InvalidLength(t *testing.T) {
	// "abc" decodes to fewer than 32 bytes.
	_, err := PubkeyFromBase58("abc")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLength)

	// A valid 64-byte signature string is too long for a pubkey.
	sig := NewSignature([64]byte{9, 9, 9})
	_, err = PubkeyFromBase58(sig.String())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestPubkeySystemProgramEncoding(t *testing.T) {
	// The zero key encodes to the canonical system program address.
	assert.Equal(t, "11111111111111111111111111111111", SystemProgramID.String())

	decoded, err := PubkeyFromBase58("11111111111111111111111111111111")
	require.NoError(t, err)
	assert.True(t, decoded.IsZero())
	assert.Equal(t, SystemProgramID, decoded)
}

func TestPubkeyOrdering(t *testing.T) {
	a := NewPubkey([32]byte{1})
	b := NewPubkey([32]byte{2})

	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
}

func TestPubkeyAsMapKey(t *testing.T) {
	m := map[Pubkey]uint64{}
	a := NewPubkey([32]byte{7})
	m[a] = 42

	same := NewPubkey([32]byte{7})
	assert.Equal(t, uint64(42), m[same])
}

func TestPubkeyJSON(t *testing.T) {
	pk := NewPubkey([32]byte{3, 3, 3})

	data, err := json.Marshal(pk)
	require.NoError(t, err)
	// Wire form is the quoted base58 string, not raw bytes.
	assert.Equal(t, `"`+pk.String()+`"`, string(data))

	var decoded Pubkey
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, pk, decoded)

	var bad Pubkey
	err = json.Unmarshal([]byte(`"not-base58!"`), &bad)
	require.Error(t, err)
}

func TestMustPubkeyPanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { MustPubkey("invalid") })
	assert.NotPanics(t, func() { MustPubkey(SystemProgramID.String()) })
}

func TestPubkeyBytesIsCopy(t *testing.T) {
	pk := NewPubkey([32]byte{5})
	b := pk.Bytes()
	b[0] = 99
	assert.Equal(t, byte(5), pk[0])
}
