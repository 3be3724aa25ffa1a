package rpc

import "solana-web-sdk/transport"

// Builder constructs an HTTPClient. The transport defaults to the native
// backend; browser builds pass transport.NewFetchTransport(), tests pass
// a double.
type Builder struct {
	endpoint   string
	commitment CommitmentLevel
	transport  transport.Client
}

// NewBuilder starts a builder bound to an endpoint URL.
func NewBuilder(endpoint string) *Builder {
	return &Builder{endpoint: endpoint}
}

// ForNetwork starts a builder bound to a named cluster preset.
func ForNetwork(network Network) *Builder {
	return NewBuilder(network.Endpoint())
}

// Commitment sets the commitment level merged into every request.
func (b *Builder) Commitment(level CommitmentLevel) *Builder {
	b.commitment = level
	return b
}

// Transport overrides the HTTP backend.
func (b *Builder) Transport(tr transport.Client) *Builder {
	b.transport = tr
	return b
}

// Build produces the client.
func (b *Builder) Build() *HTTPClient {
	tr := b.transport
	if tr == nil {
		tr = transport.NewHTTPTransport()
	}
	return NewHTTPClient(b.endpoint, tr, b.commitment)
}

// NewClient creates a client for a network with the default commitment.
func NewClient(network Network) *HTTPClient {
	return ForNetwork(network).Commitment(DefaultCommitment).Build()
}

// NewLocalnetClient creates a client for a local development validator.
func NewLocalnetClient() *HTTPClient {
	return NewClient(Localnet())
}
