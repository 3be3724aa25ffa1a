// Package ws provides Solana WebSocket subscriptions: program logs and
// slot progression notifications over a persistent connection with
// automatic reconnect.
package ws

import (
	"context"

	"solana-web-sdk/types"
)

// Subscriber defines the subscription operations.
type Subscriber interface {
	// SubscribeLogs subscribes to transaction logs matching the filter.
	// The returned channel is closed when the client shuts down.
	SubscribeLogs(ctx context.Context, filter LogsFilter) (<-chan LogNotification, error)

	// SubscribeSlots subscribes to slot progression notifications.
	SubscribeSlots(ctx context.Context) (<-chan SlotNotification, error)

	// Close shuts down the connection and all subscriptions.
	Close() error
}

// LogsFilter selects which transaction logs to receive. An empty filter
// subscribes to all logs.
type LogsFilter struct {
	// Mentions restricts logs to transactions mentioning any of these
	// addresses.
	Mentions []types.Pubkey
}

// LogNotification is one logs subscription message.
type LogNotification struct {
	Signature string
	Slot      uint64
	Logs      []string
	Err       any
}

// SlotNotification is one slot subscription message.
type SlotNotification struct {
	Slot   uint64 `json:"slot"`
	Parent uint64 `json:"parent"`
	Root   uint64 `json:"root"`
}
