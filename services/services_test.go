package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solana-web-sdk/rpc"
	"solana-web-sdk/rpc/stub"
	"solana-web-sdk/types"
)

func testPubkey(b byte) types.Pubkey {
	var pk [32]byte
	pk[0] = b
	return types.NewPubkey(pk)
}

func TestAccountServiceGetBalance(t *testing.T) {
	node := stub.New()
	pk := testPubkey(1)
	node.AddAccount(&rpc.Account{Pubkey: pk, Lamports: 2 * LamportsPerSol, Owner: types.SystemProgramID})
	svc := NewAccountService(node)

	lamports, err := svc.GetBalance(context.Background(), pk)
	require.NoError(t, err)
	assert.Equal(t, uint64(2*LamportsPerSol), lamports)

	sol, err := svc.GetBalanceSol(context.Background(), pk)
	require.NoError(t, err)
	assert.Equal(t, 2.0, sol)
}

func TestAccountServiceMissingAccount(t *testing.T) {
	svc := NewAccountService(stub.New())

	lamports, err := svc.GetBalance(context.Background(), testPubkey(1))
	require.NoError(t, err)
	assert.Equal(t, uint64(0), lamports)

	acc, err := svc.GetAccountInfo(context.Background(), testPubkey(1))
	require.NoError(t, err)
	assert.Nil(t, acc)
}

func TestAccountServiceMultipleBalances(t *testing.T) {
	node := stub.New()
	node.AddAccount(&rpc.Account{Pubkey: testPubkey(1), Lamports: 100})
	node.AddAccount(&rpc.Account{Pubkey: testPubkey(3), Lamports: 300})
	svc := NewAccountService(node)

	pubkeys := []types.Pubkey{testPubkey(1), testPubkey(2), testPubkey(3)}
	balances, err := svc.GetMultipleBalances(context.Background(), pubkeys)
	require.NoError(t, err)
	require.Len(t, balances, 3)

	assert.Equal(t, uint64(100), balances[0].Lamports)
	assert.True(t, balances[0].Exists)
	assert.Equal(t, uint64(0), balances[1].Lamports)
	assert.False(t, balances[1].Exists)
	assert.Equal(t, uint64(300), balances[2].Lamports)
	assert.Equal(t, testPubkey(2), balances[1].Pubkey)

	total, err := svc.TotalBalance(context.Background(), pubkeys)
	require.NoError(t, err)
	assert.Equal(t, uint64(400), total)
}

func TestAccountServiceMultipleBalancesEmpty(t *testing.T) {
	svc := NewAccountService(stub.New())

	balances, err := svc.GetMultipleBalances(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, balances)
}

func TestAccountServiceFund(t *testing.T) {
	node := stub.New()
	svc := NewAccountService(node)
	pk := testPubkey(1)

	_, err := svc.Fund(context.Background(), pk, 500)
	require.NoError(t, err)

	lamports, err := svc.GetBalance(context.Background(), pk)
	require.NoError(t, err)
	assert.Equal(t, uint64(500), lamports)
}

func TestAccountServicePropagatesErrors(t *testing.T) {
	node := stub.New()
	node.Err = errors.New("boom")
	svc := NewAccountService(node)

	_, err := svc.GetBalance(context.Background(), testPubkey(1))
	assert.ErrorContains(t, err, "boom")

	_, err = svc.GetMultipleBalances(context.Background(), []types.Pubkey{testPubkey(1)})
	assert.ErrorContains(t, err, "boom")
}

func TestTransactionServiceSend(t *testing.T) {
	node := stub.New()
	node.SentSig = types.Signature{1, 2, 3}
	svc := NewTransactionService(node)

	sig, err := svc.Send(context.Background(), []byte("tx"))
	require.NoError(t, err)
	assert.Equal(t, node.SentSig, sig)
	require.Len(t, node.SentTransactions, 1)
	assert.Equal(t, "dHg=", node.SentTransactions[0])
}

func TestTransactionServiceSendEmpty(t *testing.T) {
	svc := NewTransactionService(stub.New())

	_, err := svc.Send(context.Background(), nil)
	assert.ErrorContains(t, err, "empty payload")
}

func TestTransactionServiceBlockhash(t *testing.T) {
	node := stub.New()
	node.Blockhash = rpc.LatestBlockhash{
		Blockhash:            types.Hash{9},
		LastValidBlockHeight: 150,
	}
	node.Height = 100
	svc := NewTransactionService(node)

	bh, err := svc.GetLatestBlockhash(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(150), bh.LastValidBlockHeight)

	valid, err := svc.BlockhashValid(context.Background(), bh)
	require.NoError(t, err)
	assert.True(t, valid)

	node.Height = 151
	valid, err = svc.BlockhashValid(context.Background(), bh)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestNetworkServiceHealthCheck(t *testing.T) {
	node := stub.New()
	svc := NewNetworkService(node)

	require.NoError(t, svc.HealthCheck(context.Background()))

	node.Healthy = false
	assert.Error(t, svc.HealthCheck(context.Background()))
}

func TestNetworkServiceStatus(t *testing.T) {
	node := stub.New()
	node.Slot = 5000
	node.Height = 4900
	node.Version = rpc.Version{SolanaCore: "1.18.22", FeatureSet: 42}
	svc := NewNetworkService(node)

	status, err := svc.GetNetworkStatus(context.Background())
	require.NoError(t, err)
	assert.True(t, status.Healthy)
	assert.Equal(t, uint64(5000), status.Slot)
	assert.Equal(t, uint64(4900), status.BlockHeight)
	assert.Equal(t, "1.18.22", status.Version.SolanaCore)
}

func TestNetworkServiceStatusUnhealthy(t *testing.T) {
	node := stub.New()
	node.Healthy = false
	node.Slot = 5000
	svc := NewNetworkService(node)

	status, err := svc.GetNetworkStatus(context.Background())
	require.NoError(t, err)
	assert.False(t, status.Healthy)
	assert.Equal(t, uint64(5000), status.Slot)
}
