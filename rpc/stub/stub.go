// Package stub provides an in-memory rpc.Client for testing code built on
// top of the RPC layer.
package stub

import (
	"context"
	"errors"

	"solana-web-sdk/rpc"
	"solana-web-sdk/types"
)

// Client implements rpc.Client against in-memory fixtures. The zero value
// reports empty balances and missing accounts; Err, when set, is returned
// by every operation.
type Client struct {
	Accounts  map[types.Pubkey]*rpc.Account
	Blockhash rpc.LatestBlockhash
	Height    uint64
	Slot      uint64
	Version   rpc.Version
	SentSig   types.Signature
	Healthy   bool

	// Err fails every call when non-nil.
	Err error

	// SentTransactions records submitted transaction payloads.
	SentTransactions []string
}

var _ rpc.Client = (*Client)(nil)

// New creates a healthy stub with no accounts.
func New() *Client {
	return &Client{
		Accounts: make(map[types.Pubkey]*rpc.Account),
		Healthy:  true,
	}
}

// AddAccount registers an account fixture.
func (c *Client) AddAccount(acc *rpc.Account) {
	c.Accounts[acc.Pubkey] = acc
}

// GetAccountInfo implements rpc.Client.
func (c *Client) GetAccountInfo(_ context.Context, pubkey types.Pubkey) (*rpc.Account, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	acc, ok := c.Accounts[pubkey]
	if !ok {
		return nil, nil
	}
	cp := *acc
	return &cp, nil
}

// GetBalance implements rpc.Client.
func (c *Client) GetBalance(_ context.Context, pubkey types.Pubkey) (uint64, error) {
	if c.Err != nil {
		return 0, c.Err
	}
	acc, ok := c.Accounts[pubkey]
	if !ok {
		return 0, nil
	}
	return acc.Lamports, nil
}

// GetLatestBlockhash implements rpc.Client.
func (c *Client) GetLatestBlockhash(_ context.Context) (rpc.LatestBlockhash, error) {
	if c.Err != nil {
		return rpc.LatestBlockhash{}, c.Err
	}
	return c.Blockhash, nil
}

// SendTransaction implements rpc.Client.
func (c *Client) SendTransaction(_ context.Context, encodedTx string) (types.Signature, error) {
	if c.Err != nil {
		return types.Signature{}, c.Err
	}
	c.SentTransactions = append(c.SentTransactions, encodedTx)
	return c.SentSig, nil
}

// GetBlockHeight implements rpc.Client.
func (c *Client) GetBlockHeight(_ context.Context) (uint64, error) {
	if c.Err != nil {
		return 0, c.Err
	}
	return c.Height, nil
}

// GetMultipleAccounts implements rpc.Client.
func (c *Client) GetMultipleAccounts(ctx context.Context, pubkeys []types.Pubkey) ([]*rpc.Account, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	accounts := make([]*rpc.Account, len(pubkeys))
	for i, pk := range pubkeys {
		acc, err := c.GetAccountInfo(ctx, pk)
		if err != nil {
			return nil, err
		}
		accounts[i] = acc
	}
	return accounts, nil
}

// RequestAirdrop implements rpc.Client. The airdrop is applied to the
// stored account fixture so follow-up balance reads observe it.
func (c *Client) RequestAirdrop(_ context.Context, pubkey types.Pubkey, lamports uint64) (types.Signature, error) {
	if c.Err != nil {
		return types.Signature{}, c.Err
	}
	acc, ok := c.Accounts[pubkey]
	if !ok {
		acc = &rpc.Account{Pubkey: pubkey, Owner: types.SystemProgramID}
		c.Accounts[pubkey] = acc
	}
	acc.Lamports += lamports
	return c.SentSig, nil
}

// GetSlot implements rpc.Client.
func (c *Client) GetSlot(_ context.Context) (uint64, error) {
	if c.Err != nil {
		return 0, c.Err
	}
	return c.Slot, nil
}

// GetVersion implements rpc.Client.
func (c *Client) GetVersion(_ context.Context) (rpc.Version, error) {
	if c.Err != nil {
		return rpc.Version{}, c.Err
	}
	return c.Version, nil
}

// GetHealth implements rpc.Client.
func (c *Client) GetHealth(_ context.Context) error {
	if c.Err != nil {
		return c.Err
	}
	if !c.Healthy {
		return errUnhealthy
	}
	return nil
}

var errUnhealthy = errors.New("node unhealthy")
