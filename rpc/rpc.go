package rpc

import (
	"context"

	"solana-web-sdk/types"
)

// Client defines the typed node operations. HTTPClient is the production
// implementation; the stub subpackage provides an in-memory double for
// tests of higher layers.
type Client interface {
	// GetAccountInfo retrieves an account. Returns nil when the account
	// does not exist.
	GetAccountInfo(ctx context.Context, pubkey types.Pubkey) (*Account, error)

	// GetBalance retrieves the lamport balance of an account. Absent
	// accounts report zero.
	GetBalance(ctx context.Context, pubkey types.Pubkey) (uint64, error)

	// GetLatestBlockhash retrieves a recent blockhash for transaction
	// building.
	GetLatestBlockhash(ctx context.Context) (LatestBlockhash, error)

	// SendTransaction submits a base64-encoded signed transaction and
	// returns its signature.
	SendTransaction(ctx context.Context, encodedTx string) (types.Signature, error)

	// GetBlockHeight retrieves the current block height.
	GetBlockHeight(ctx context.Context) (uint64, error)

	// GetMultipleAccounts retrieves accounts in one round trip. The
	// result has the same order and length as pubkeys; missing accounts
	// are nil entries.
	GetMultipleAccounts(ctx context.Context, pubkeys []types.Pubkey) ([]*Account, error)

	// RequestAirdrop requests lamports from the cluster faucet.
	// Available on test clusters and local validators only.
	RequestAirdrop(ctx context.Context, pubkey types.Pubkey, lamports uint64) (types.Signature, error)

	// GetSlot retrieves the current slot.
	GetSlot(ctx context.Context) (uint64, error)

	// GetVersion retrieves the node software version.
	GetVersion(ctx context.Context) (Version, error)

	// GetHealth reports nil when the node considers itself healthy.
	GetHealth(ctx context.Context) error
}
