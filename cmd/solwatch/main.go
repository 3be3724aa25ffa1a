// Package main provides a node watcher that polls a Solana node over
// JSON-RPC and optionally streams slot updates over WebSocket:
// - Status (polled): slot, block height, health, node version
// - Balances (polled): lamport balances for watched accounts
// - Slots (streamed): slotSubscribe notifications when --ws-endpoint is set
// Prometheus metrics for all node traffic are served on --metrics-addr.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"solana-web-sdk/observability"
	"solana-web-sdk/rpc"
	"solana-web-sdk/services"
	"solana-web-sdk/transport"
	"solana-web-sdk/types"
	"solana-web-sdk/ws"
)

// Cluster aliases mapped to network presets.
var networkAliases = map[string]rpc.Network{
	"mainnet":  rpc.Mainnet,
	"testnet":  rpc.Testnet,
	"devnet":   rpc.Devnet,
	"localnet": rpc.Localnet(),
}

// Watcher polls node status and watched account balances.
type Watcher struct {
	accounts *services.AccountService
	network  *services.NetworkService
	watched  []types.Pubkey
	interval time.Duration
	logger   *log.Logger
}

func main() {
	endpoint := flag.String("endpoint", os.Getenv("SOLANA_RPC_ENDPOINT"), "Node JSON-RPC HTTP endpoint (overrides --network)")
	network := flag.String("network", "devnet", "Cluster preset (mainnet, testnet, devnet, localnet)")
	wsEndpoint := flag.String("ws-endpoint", os.Getenv("SOLANA_WS_ENDPOINT"), "Node WebSocket endpoint for slot streaming")
	commitment := flag.String("commitment", string(rpc.DefaultCommitment), "Commitment level (processed, confirmed, finalized)")
	accounts := flag.String("accounts", "", "Comma-separated base58 pubkeys to watch")
	interval := flag.Duration("interval", 30*time.Second, "Polling interval")
	metricsAddr := flag.String("metrics-addr", ":9090", "Prometheus metrics HTTP address")
	retries := flag.Int("retries", transport.DefaultMaxRetries, "Max retries per node call")

	flag.Parse()

	logger := log.New(os.Stdout, "[solwatch] ", log.LstdFlags|log.Lshortfile)

	level := rpc.CommitmentLevel(*commitment)
	if !level.Valid() {
		logger.Fatalf("Invalid commitment level %q", *commitment)
	}

	url := *endpoint
	if url == "" {
		net, ok := networkAliases[strings.ToLower(*network)]
		if !ok {
			logger.Fatalf("Unknown network %q (use --endpoint for a custom node)", *network)
		}
		url = net.Endpoint()
	}

	watched, err := parseAccounts(*accounts)
	if err != nil {
		logger.Fatalf("Invalid --accounts: %v", err)
	}

	// Transport stack: HTTP backend, retry on transient failures,
	// metrics on every logical call.
	metrics := observability.NewMetrics("")
	tr := observability.NewInstrumentedTransport(
		transport.NewRetryTransport(transport.NewHTTPTransport(), transport.WithMaxRetries(*retries)),
		metrics,
	)
	client := rpc.NewBuilder(url).Commitment(level).Transport(tr).Build()

	watcher := &Watcher{
		accounts: services.NewAccountService(client),
		network:  services.NewNetworkService(client),
		watched:  watched,
		interval: *interval,
		logger:   logger,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Printf("Received signal %v, shutting down...", sig)
		cancel()
	}()

	go serveMetrics(*metricsAddr, metrics, logger)

	if *wsEndpoint != "" {
		go streamSlots(ctx, *wsEndpoint, level, metrics, logger)
	}

	logger.Printf("Watching %s (commitment=%s, %d accounts)", url, level, len(watched))
	watcher.Run(ctx)
	logger.Println("Shutdown complete")
}

// Run polls until the context is cancelled. The first poll happens
// immediately.
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.poll(ctx)
		}
	}
}

func (w *Watcher) poll(ctx context.Context) {
	status, err := w.network.GetNetworkStatus(ctx)
	if err != nil {
		w.logger.Printf("Status poll failed: %v", err)
		return
	}
	w.logger.Printf("slot=%d height=%d healthy=%v core=%s",
		status.Slot, status.BlockHeight, status.Healthy, status.Version.SolanaCore)

	if len(w.watched) == 0 {
		return
	}
	balances, err := w.accounts.GetMultipleBalances(ctx, w.watched)
	if err != nil {
		w.logger.Printf("Balance poll failed: %v", err)
		return
	}
	for _, b := range balances {
		if !b.Exists {
			w.logger.Printf("account %s: not found", b.Pubkey)
			continue
		}
		w.logger.Printf("account %s: %d lamports (%.4f SOL)",
			b.Pubkey, b.Lamports, float64(b.Lamports)/services.LamportsPerSol)
	}
}

// streamSlots follows slot notifications until the context is cancelled.
func streamSlots(ctx context.Context, endpoint string, level rpc.CommitmentLevel, metrics *observability.Metrics, logger *log.Logger) {
	config := ws.DefaultConfig()
	config.Commitment = level

	conn, err := ws.Dial(ctx, endpoint, &config)
	if err != nil {
		logger.Printf("WebSocket dial failed: %v", err)
		return
	}
	defer conn.Close()

	slots, err := conn.SubscribeSlots(ctx)
	if err != nil {
		logger.Printf("Slot subscription failed: %v", err)
		return
	}
	metrics.ActiveSubscriptions.Inc()
	defer metrics.ActiveSubscriptions.Dec()

	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-slots:
			if !ok {
				return
			}
			metrics.WSNotificationsTotal.WithLabelValues("slot").Inc()
			logger.Printf("slot notification: slot=%d parent=%d root=%d", n.Slot, n.Parent, n.Root)
		}
	}
}

func serveMetrics(addr string, metrics *observability.Metrics, logger *log.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	logger.Printf("Serving metrics on %s/metrics", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Printf("Metrics server stopped: %v", err)
	}
}

// parseAccounts resolves the comma-separated --accounts flag.
func parseAccounts(raw string) ([]types.Pubkey, error) {
	if raw == "" {
		return nil, nil
	}
	var out []types.Pubkey
	for _, s := range strings.Split(raw, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		pk, err := types.PubkeyFromBase58(s)
		if err != nil {
			return nil, fmt.Errorf("pubkey %q: %w", s, err)
		}
		out = append(out, pk)
	}
	return out, nil
}
