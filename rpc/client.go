package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"solana-web-sdk/transport"
	"solana-web-sdk/types"
)

// HTTPClient talks JSON-RPC 2.0 to one node endpoint over a
// transport.Client. It holds no mutable state: every call builds its own
// request and performs its own round trip, so a single client can be
// shared across goroutines.
type HTTPClient struct {
	transport  transport.Client
	endpoint   string
	commitment CommitmentLevel
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates a client bound to endpoint using the given
// transport. Most callers should construct clients through the Builder.
func NewHTTPClient(endpoint string, tr transport.Client, commitment CommitmentLevel) *HTTPClient {
	return &HTTPClient{
		transport:  tr,
		endpoint:   endpoint,
		commitment: commitment,
	}
}

// Endpoint returns the node endpoint URL.
func (c *HTTPClient) Endpoint() string {
	return c.endpoint
}

// Commitment returns the commitment level attached to every request.
func (c *HTTPClient) Commitment() CommitmentLevel {
	return c.commitment
}

// call performs one round trip and unwraps the result into out. Node
// errors and transport failures are wrapped with the method name.
func (c *HTTPClient) call(ctx context.Context, req *Request, out any) error {
	var resp Response
	if err := c.transport.PostJSON(ctx, c.endpoint, req, &resp); err != nil {
		return fmt.Errorf("%s: %w", req.Method, err)
	}
	if resp.Error != nil {
		return fmt.Errorf("%s: %w", req.Method, resp.Error)
	}
	if out == nil || resp.Result == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Result, out); err != nil {
		if errors.Is(err, types.ErrInvalidEncoding) || errors.Is(err, types.ErrInvalidLength) {
			return fmt.Errorf("%s: %w: %v", req.Method, ErrInvalidPubkey, err)
		}
		return fmt.Errorf("%s: %w: %v", req.Method, ErrParse, err)
	}
	return nil
}

// options builds the trailing configuration object, merging the client
// commitment into every request uniformly.
func (c *HTTPClient) options(extra map[string]any) map[string]any {
	opts := make(map[string]any, len(extra)+1)
	if c.commitment != "" {
		opts["commitment"] = string(c.commitment)
	}
	for k, v := range extra {
		opts[k] = v
	}
	return opts
}

// GetAccountInfo implements Client.
func (c *HTTPClient) GetAccountInfo(ctx context.Context, pubkey types.Pubkey) (*Account, error) {
	req := NewRequest("getAccountInfo").
		Param(pubkey.String()).
		Param(c.options(map[string]any{"encoding": "base64"}))

	var result accountInfoResult
	if err := c.call(ctx, req, &result); err != nil {
		return nil, err
	}
	if result.Value == nil {
		return nil, nil
	}
	acc, err := result.Value.toAccount(pubkey)
	if err != nil {
		return nil, fmt.Errorf("getAccountInfo: %w", err)
	}
	return acc, nil
}

// GetBalance implements Client.
func (c *HTTPClient) GetBalance(ctx context.Context, pubkey types.Pubkey) (uint64, error) {
	req := NewRequest("getBalance").
		Param(pubkey.String()).
		Param(c.options(nil))

	var result balanceResult
	if err := c.call(ctx, req, &result); err != nil {
		return 0, err
	}
	return result.Value, nil
}

// GetLatestBlockhash implements Client.
func (c *HTTPClient) GetLatestBlockhash(ctx context.Context) (LatestBlockhash, error) {
	req := NewRequest("getLatestBlockhash").Param(c.options(nil))

	var result latestBlockhashResult
	if err := c.call(ctx, req, &result); err != nil {
		return LatestBlockhash{}, err
	}
	return result.Value, nil
}

// SendTransaction implements Client.
func (c *HTTPClient) SendTransaction(ctx context.Context, encodedTx string) (types.Signature, error) {
	opts := map[string]any{"encoding": "base64"}
	if c.commitment != "" {
		opts["preflightCommitment"] = string(c.commitment)
	}
	req := NewRequest("sendTransaction").
		Param(encodedTx).
		Param(opts)

	var result string
	if err := c.call(ctx, req, &result); err != nil {
		return types.Signature{}, err
	}

	sig, err := types.SignatureFromBase58(result)
	if err != nil {
		return types.Signature{}, fmt.Errorf("sendTransaction: %w: %v", ErrInvalidSignature, err)
	}
	return sig, nil
}

// GetBlockHeight implements Client.
func (c *HTTPClient) GetBlockHeight(ctx context.Context) (uint64, error) {
	req := NewRequest("getBlockHeight").Param(c.options(nil))

	var result uint64
	if err := c.call(ctx, req, &result); err != nil {
		return 0, err
	}
	return result, nil
}

// GetMultipleAccounts implements Client.
func (c *HTTPClient) GetMultipleAccounts(ctx context.Context, pubkeys []types.Pubkey) ([]*Account, error) {
	keys := make([]string, len(pubkeys))
	for i, pk := range pubkeys {
		keys[i] = pk.String()
	}

	req := NewRequest("getMultipleAccounts").
		Param(keys).
		Param(c.options(map[string]any{"encoding": "base64"}))

	var result multipleAccountsResult
	if err := c.call(ctx, req, &result); err != nil {
		return nil, err
	}
	if len(result.Value) != len(pubkeys) {
		return nil, fmt.Errorf("getMultipleAccounts: %w: expected %d entries, got %d",
			ErrParse, len(pubkeys), len(result.Value))
	}

	accounts := make([]*Account, len(pubkeys))
	for i, value := range result.Value {
		if value == nil {
			continue
		}
		acc, err := value.toAccount(pubkeys[i])
		if err != nil {
			return nil, fmt.Errorf("getMultipleAccounts: %w", err)
		}
		accounts[i] = acc
	}
	return accounts, nil
}

// RequestAirdrop implements Client.
func (c *HTTPClient) RequestAirdrop(ctx context.Context, pubkey types.Pubkey, lamports uint64) (types.Signature, error) {
	req := NewRequest("requestAirdrop").
		Param(pubkey.String()).
		Param(lamports).
		Param(c.options(nil))

	var result string
	if err := c.call(ctx, req, &result); err != nil {
		return types.Signature{}, err
	}

	sig, err := types.SignatureFromBase58(result)
	if err != nil {
		return types.Signature{}, fmt.Errorf("requestAirdrop: %w: %v", ErrInvalidSignature, err)
	}
	return sig, nil
}

// GetSlot implements Client.
func (c *HTTPClient) GetSlot(ctx context.Context) (uint64, error) {
	req := NewRequest("getSlot").Param(c.options(nil))

	var result uint64
	if err := c.call(ctx, req, &result); err != nil {
		return 0, err
	}
	return result, nil
}

// GetVersion implements Client.
func (c *HTTPClient) GetVersion(ctx context.Context) (Version, error) {
	req := NewRequest("getVersion")

	var result Version
	if err := c.call(ctx, req, &result); err != nil {
		return Version{}, err
	}
	return result, nil
}

// GetHealth implements Client.
func (c *HTTPClient) GetHealth(ctx context.Context) error {
	req := NewRequest("getHealth")

	var result string
	if err := c.call(ctx, req, &result); err != nil {
		return err
	}
	if result != "ok" {
		return fmt.Errorf("getHealth: node reported %q", result)
	}
	return nil
}
