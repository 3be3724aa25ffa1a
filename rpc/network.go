package rpc

// Network identifies a Solana cluster and its RPC endpoint. The value is
// immutable; two networks are equal when both name and endpoint match.
type Network struct {
	name     string
	endpoint string
}

// Named cluster presets. Endpoints are the public cluster URLs and never
// change between calls.
var (
	Mainnet = Network{name: "mainnet", endpoint: "https://api.mainnet-beta.solana.com"}
	Testnet = Network{name: "testnet", endpoint: "https://api.testnet.solana.com"}
	Devnet  = Network{name: "devnet", endpoint: "https://api.devnet.solana.com"}
)

// LocalnetEndpoint is the fixed loop-back address a local development
// validator listens on.
const LocalnetEndpoint = "http://127.0.0.1:8899"

// Localnet returns the preset for a local development validator.
func Localnet() Network {
	return Network{name: "localnet", endpoint: LocalnetEndpoint}
}

// CustomNetwork wraps an arbitrary RPC endpoint URL.
func CustomNetwork(url string) Network {
	return Network{name: "custom", endpoint: url}
}

// Name returns the cluster name.
func (n Network) Name() string {
	return n.name
}

// Endpoint returns the RPC endpoint URL.
func (n Network) Endpoint() string {
	return n.endpoint
}

// String implements fmt.Stringer.
func (n Network) String() string {
	return n.name + " (" + n.endpoint + ")"
}
