package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"

	"solana-web-sdk/rpc"
	"solana-web-sdk/types"
)

// TransactionService prepares and submits transactions.
type TransactionService struct {
	client rpc.Client
	logger *log.Logger
}

// NewTransactionService creates a transaction service over the given client.
func NewTransactionService(client rpc.Client) *TransactionService {
	return &TransactionService{
		client: client,
		logger: log.New(os.Stderr, "[tx] ", log.LstdFlags),
	}
}

// GetLatestBlockhash returns a recent blockhash to build a transaction
// against, together with the last block height at which it is valid.
func (s *TransactionService) GetLatestBlockhash(ctx context.Context) (rpc.LatestBlockhash, error) {
	bh, err := s.client.GetLatestBlockhash(ctx)
	if err != nil {
		return rpc.LatestBlockhash{}, fmt.Errorf("get latest blockhash: %w", err)
	}
	return bh, nil
}

// Send base64-encodes a serialized signed transaction, submits it and
// returns its signature.
func (s *TransactionService) Send(ctx context.Context, signedTx []byte) (types.Signature, error) {
	if len(signedTx) == 0 {
		return types.Signature{}, fmt.Errorf("send transaction: empty payload")
	}

	sig, err := s.client.SendTransaction(ctx, base64.StdEncoding.EncodeToString(signedTx))
	if err != nil {
		return types.Signature{}, fmt.Errorf("send transaction: %w", err)
	}
	s.logger.Printf("submitted transaction %s (%d bytes)", sig, len(signedTx))
	return sig, nil
}

// BlockhashValid reports whether a blockhash obtained earlier is still
// usable, by comparing its expiry against the current block height.
func (s *TransactionService) BlockhashValid(ctx context.Context, bh rpc.LatestBlockhash) (bool, error) {
	height, err := s.client.GetBlockHeight(ctx)
	if err != nil {
		return false, fmt.Errorf("get block height: %w", err)
	}
	return height <= bh.LastValidBlockHeight, nil
}
