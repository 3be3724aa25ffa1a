package rpc

// CommitmentLevel is the finality guarantee requested for a read, from
// least to most confirmed.
type CommitmentLevel string

const (
	CommitmentProcessed CommitmentLevel = "processed"
	CommitmentConfirmed CommitmentLevel = "confirmed"
	CommitmentFinalized CommitmentLevel = "finalized"
)

// DefaultCommitment is applied when the builder is given none.
const DefaultCommitment = CommitmentConfirmed

// Valid reports whether the level is one of the three known values.
func (c CommitmentLevel) Valid() bool {
	switch c {
	case CommitmentProcessed, CommitmentConfirmed, CommitmentFinalized:
		return true
	}
	return false
}

// Rank orders levels by increasing finality: processed < confirmed <
// finalized. Unknown levels rank below processed.
func (c CommitmentLevel) Rank() int {
	switch c {
	case CommitmentProcessed:
		return 1
	case CommitmentConfirmed:
		return 2
	case CommitmentFinalized:
		return 3
	}
	return 0
}
