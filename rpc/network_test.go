package rpc

import "testing"

func TestNetworkEndpoints(t *testing.T) {
	tests := []struct {
		network  Network
		endpoint string
	}{
		{Mainnet, "https://api.mainnet-beta.solana.com"},
		{Testnet, "https://api.testnet.solana.com"},
		{Devnet, "https://api.devnet.solana.com"},
		{Localnet(), "http://127.0.0.1:8899"},
		{CustomNetwork("http://rpc.example.com"), "http://rpc.example.com"},
	}

	for _, tt := range tests {
		if got := tt.network.Endpoint(); got != tt.endpoint {
			t.Errorf("%s: expected endpoint %s, got %s", tt.network.Name(), tt.endpoint, got)
		}
		// Endpoint is a fixed point: repeated calls return the same string.
		if tt.network.Endpoint() != tt.network.Endpoint() {
			t.Errorf("%s: endpoint not stable", tt.network.Name())
		}
	}
}

func TestNetworkEquality(t *testing.T) {
	if Localnet() != Localnet() {
		t.Error("expected localnet presets to compare equal")
	}
	if CustomNetwork("http://a") == CustomNetwork("http://b") {
		t.Error("expected custom networks with different urls to differ")
	}
	if CustomNetwork("http://a") != CustomNetwork("http://a") {
		t.Error("expected custom networks with same url to compare equal")
	}
	if Mainnet == Testnet {
		t.Error("expected mainnet and testnet to differ")
	}
}

func TestCommitmentLevels(t *testing.T) {
	if !CommitmentProcessed.Valid() || !CommitmentConfirmed.Valid() || !CommitmentFinalized.Valid() {
		t.Error("expected known levels to be valid")
	}
	if CommitmentLevel("eventual").Valid() {
		t.Error("expected unknown level to be invalid")
	}
	if !(CommitmentProcessed.Rank() < CommitmentConfirmed.Rank() &&
		CommitmentConfirmed.Rank() < CommitmentFinalized.Rank()) {
		t.Error("expected increasing finality ordering")
	}
}
