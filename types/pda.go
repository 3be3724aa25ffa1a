package types

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"filippo.io/edwards25519"
)

// PDA derivation limits, fixed by the Solana runtime.
const (
	MaxSeeds      = 16
	MaxSeedLength = 32
)

// pdaMarker is appended to the digest input to domain-separate PDAs from
// ordinary sha256 hashes.
const pdaMarker = "ProgramDerivedAddress"

// ErrNoViableBump is returned when no bump seed in [0, 255] yields an
// off-curve address. Statistically this should never happen.
var ErrNoViableBump = errors.New("unable to find a viable program address bump seed")

// CreateProgramAddress derives a program address from seeds and a program id.
// The derived address must not be a valid ed25519 curve point, since PDAs
// have no corresponding private key.
func CreateProgramAddress(seeds [][]byte, programID Pubkey) (Pubkey, error) {
	if len(seeds) > MaxSeeds {
		return Pubkey{}, fmt.Errorf("too many seeds: %d > %d", len(seeds), MaxSeeds)
	}
	for i, seed := range seeds {
		if len(seed) > MaxSeedLength {
			return Pubkey{}, fmt.Errorf("seed %d too long: %d > %d", i, len(seed), MaxSeedLength)
		}
	}

	h := sha256.New()
	for _, seed := range seeds {
		h.Write(seed)
	}
	h.Write(programID[:])
	h.Write([]byte(pdaMarker))

	var pk Pubkey
	copy(pk[:], h.Sum(nil))

	if isOnCurve(pk[:]) {
		return Pubkey{}, errors.New("invalid seeds: address falls on the ed25519 curve")
	}
	return pk, nil
}

// FindProgramAddress searches bump seeds from 255 downward for a valid
// program address. Returns the address and the bump that produced it.
func FindProgramAddress(seeds [][]byte, programID Pubkey) (Pubkey, uint8, error) {
	if len(seeds)+1 > MaxSeeds {
		return Pubkey{}, 0, fmt.Errorf("too many seeds: %d > %d", len(seeds)+1, MaxSeeds)
	}
	for i, seed := range seeds {
		if len(seed) > MaxSeedLength {
			return Pubkey{}, 0, fmt.Errorf("seed %d too long: %d > %d", i, len(seed), MaxSeedLength)
		}
	}

	for bump := 255; bump >= 0; bump-- {
		bumped := append(append([][]byte{}, seeds...), []byte{uint8(bump)})
		pk, err := CreateProgramAddress(bumped, programID)
		if err == nil {
			return pk, uint8(bump), nil
		}
	}
	return Pubkey{}, 0, ErrNoViableBump
}

// isOnCurve reports whether the bytes decode to a valid ed25519 point.
func isOnCurve(point []byte) bool {
	if len(point) != 32 {
		return false
	}
	_, err := new(edwards25519.Point).SetBytes(point)
	return err == nil
}
