package rpc

import (
	"encoding/base64"
	"fmt"

	"solana-web-sdk/types"
)

// Account is the typed projection of a node account-info response. It is
// built per call and never cached by the client.
type Account struct {
	Pubkey     types.Pubkey
	Lamports   uint64
	Data       []byte
	Owner      types.Pubkey
	Executable bool
	RentEpoch  uint64
}

// LatestBlockhash is a recent blockhash and the last block height at which
// a transaction built on it remains valid. The client performs no expiry
// enforcement; this is informational data from the node.
type LatestBlockhash struct {
	Blockhash            types.Hash `json:"blockhash"`
	LastValidBlockHeight uint64     `json:"lastValidBlockHeight"`
}

// Version is the node software version from getVersion.
type Version struct {
	SolanaCore string `json:"solana-core"`
	FeatureSet uint64 `json:"feature-set"`
}

// rpcContext is the slot context attached to value-wrapped responses.
type rpcContext struct {
	Slot uint64 `json:"slot"`
}

type balanceResult struct {
	Context rpcContext `json:"context"`
	Value   uint64     `json:"value"`
}

type accountInfoResult struct {
	Context rpcContext    `json:"context"`
	Value   *accountValue `json:"value"`
}

type multipleAccountsResult struct {
	Context rpcContext      `json:"context"`
	Value   []*accountValue `json:"value"`
}

type latestBlockhashResult struct {
	Context rpcContext      `json:"context"`
	Value   LatestBlockhash `json:"value"`
}

// accountValue is the raw wire form of an account. Data arrives as a
// [payload, encoding] pair when base64 encoding is requested.
type accountValue struct {
	Lamports   uint64       `json:"lamports"`
	Data       []string     `json:"data"`
	Owner      types.Pubkey `json:"owner"`
	Executable bool         `json:"executable"`
	RentEpoch  uint64       `json:"rentEpoch"`
}

// toAccount decodes the base64 data payload into the typed Account.
func (v *accountValue) toAccount(pubkey types.Pubkey) (*Account, error) {
	var data []byte
	if len(v.Data) > 0 && v.Data[0] != "" {
		decoded, err := base64.StdEncoding.DecodeString(v.Data[0])
		if err != nil {
			return nil, fmt.Errorf("%w: account data is not valid base64: %v", ErrParse, err)
		}
		data = decoded
	}

	return &Account{
		Pubkey:     pubkey,
		Lamports:   v.Lamports,
		Data:       data,
		Owner:      v.Owner,
		Executable: v.Executable,
		RentEpoch:  v.RentEpoch,
	}, nil
}
