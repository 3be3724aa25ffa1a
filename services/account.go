// Package services provides higher-level operations composed from the
// raw node API client: balance aggregation, transaction submission with
// blockhash handling, and network health checks.
package services

import (
	"context"
	"fmt"
	"log"
	"os"

	"solana-web-sdk/rpc"
	"solana-web-sdk/types"
)

// LamportsPerSol is the conversion factor between lamports and SOL.
const LamportsPerSol = 1_000_000_000

// AccountService answers account and balance queries.
type AccountService struct {
	client rpc.Client
	logger *log.Logger
}

// NewAccountService creates an account service over the given client.
func NewAccountService(client rpc.Client) *AccountService {
	return &AccountService{
		client: client,
		logger: log.New(os.Stderr, "[accounts] ", log.LstdFlags),
	}
}

// GetBalance returns the lamport balance of pubkey, zero when the
// account does not exist.
func (s *AccountService) GetBalance(ctx context.Context, pubkey types.Pubkey) (uint64, error) {
	balance, err := s.client.GetBalance(ctx, pubkey)
	if err != nil {
		return 0, fmt.Errorf("get balance for %s: %w", pubkey, err)
	}
	return balance, nil
}

// GetBalanceSol returns the balance of pubkey converted to SOL.
func (s *AccountService) GetBalanceSol(ctx context.Context, pubkey types.Pubkey) (float64, error) {
	lamports, err := s.GetBalance(ctx, pubkey)
	if err != nil {
		return 0, err
	}
	return float64(lamports) / LamportsPerSol, nil
}

// GetAccountInfo fetches a single account, nil when it does not exist.
func (s *AccountService) GetAccountInfo(ctx context.Context, pubkey types.Pubkey) (*rpc.Account, error) {
	acc, err := s.client.GetAccountInfo(ctx, pubkey)
	if err != nil {
		return nil, fmt.Errorf("get account %s: %w", pubkey, err)
	}
	return acc, nil
}

// Balance pairs a pubkey with its lamport balance.
type Balance struct {
	Pubkey   types.Pubkey
	Lamports uint64
	// Exists is false when no account record was found on chain.
	Exists bool
}

// GetMultipleBalances fetches balances for several accounts in one
// request. The result preserves the order of pubkeys; missing accounts
// report a zero balance with Exists false.
func (s *AccountService) GetMultipleBalances(ctx context.Context, pubkeys []types.Pubkey) ([]Balance, error) {
	if len(pubkeys) == 0 {
		return nil, nil
	}

	accounts, err := s.client.GetMultipleAccounts(ctx, pubkeys)
	if err != nil {
		return nil, fmt.Errorf("get multiple accounts: %w", err)
	}

	balances := make([]Balance, len(pubkeys))
	for i, acc := range accounts {
		balances[i] = Balance{Pubkey: pubkeys[i]}
		if acc != nil {
			balances[i].Lamports = acc.Lamports
			balances[i].Exists = true
		}
	}
	return balances, nil
}

// TotalBalance sums the balances of several accounts.
func (s *AccountService) TotalBalance(ctx context.Context, pubkeys []types.Pubkey) (uint64, error) {
	balances, err := s.GetMultipleBalances(ctx, pubkeys)
	if err != nil {
		return 0, err
	}
	var total uint64
	for _, b := range balances {
		total += b.Lamports
	}
	return total, nil
}

// Fund requests an airdrop to pubkey and returns the transaction
// signature. Only devnet and localnet honor airdrop requests.
func (s *AccountService) Fund(ctx context.Context, pubkey types.Pubkey, lamports uint64) (types.Signature, error) {
	sig, err := s.client.RequestAirdrop(ctx, pubkey, lamports)
	if err != nil {
		return types.Signature{}, fmt.Errorf("request airdrop for %s: %w", pubkey, err)
	}
	s.logger.Printf("airdrop of %d lamports to %s: %s", lamports, pubkey, sig)
	return sig, nil
}
