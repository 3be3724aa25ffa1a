package services

import (
	"context"
	"fmt"
	"log"
	"os"

	"solana-web-sdk/rpc"
)

// NetworkStatus is a snapshot of the connected node's state.
type NetworkStatus struct {
	Healthy     bool
	Slot        uint64
	BlockHeight uint64
	Version     rpc.Version
}

// NetworkService answers questions about the connected node.
type NetworkService struct {
	client rpc.Client
	logger *log.Logger
}

// NewNetworkService creates a network service over the given client.
func NewNetworkService(client rpc.Client) *NetworkService {
	return &NetworkService{
		client: client,
		logger: log.New(os.Stderr, "[network] ", log.LstdFlags),
	}
}

// HealthCheck reports whether the node considers itself healthy.
func (s *NetworkService) HealthCheck(ctx context.Context) error {
	if err := s.client.GetHealth(ctx); err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	return nil
}

// GetNetworkStatus collects a point-in-time snapshot of the node. The
// snapshot is returned even when the health check fails, so callers can
// still inspect slot and version of a degraded node.
func (s *NetworkService) GetNetworkStatus(ctx context.Context) (NetworkStatus, error) {
	var status NetworkStatus

	slot, err := s.client.GetSlot(ctx)
	if err != nil {
		return status, fmt.Errorf("get slot: %w", err)
	}
	status.Slot = slot

	height, err := s.client.GetBlockHeight(ctx)
	if err != nil {
		return status, fmt.Errorf("get block height: %w", err)
	}
	status.BlockHeight = height

	version, err := s.client.GetVersion(ctx)
	if err != nil {
		return status, fmt.Errorf("get version: %w", err)
	}
	status.Version = version

	if err := s.client.GetHealth(ctx); err != nil {
		s.logger.Printf("node unhealthy: %v", err)
	} else {
		status.Healthy = true
	}
	return status, nil
}
