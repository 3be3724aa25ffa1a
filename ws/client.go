package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"solana-web-sdk/rpc"
)

// notifyBuffer is the per-subscription channel capacity. Sends block once
// the buffer fills so notifications are never dropped.
const notifyBuffer = 1024

// Config tunes connection behavior.
type Config struct {
	// Commitment is attached to every subscription request.
	Commitment rpc.CommitmentLevel
	// ReconnectDelay is the initial delay before a reconnect attempt.
	ReconnectDelay time.Duration
	// MaxReconnectDelay caps the reconnect backoff.
	MaxReconnectDelay time.Duration
	// PingInterval is the keepalive ping cadence.
	PingInterval time.Duration
	// ReadTimeout bounds a single read.
	ReadTimeout time.Duration
	// WriteTimeout bounds a single write.
	WriteTimeout time.Duration
	// SubscribeTimeout bounds the wait for a subscription confirmation.
	SubscribeTimeout time.Duration
	// Logger receives connection-level events. Defaults to stderr.
	Logger *log.Logger
}

// DefaultConfig returns the default connection configuration.
func DefaultConfig() Config {
	return Config{
		Commitment:        rpc.CommitmentConfirmed,
		ReconnectDelay:    1 * time.Second,
		MaxReconnectDelay: 30 * time.Second,
		PingInterval:      30 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      10 * time.Second,
		SubscribeTimeout:  30 * time.Second,
	}
}

// subscription tracks one active server-side subscription so it can be
// re-established after a reconnect and its notifications dispatched.
type subscription struct {
	method       string
	notifyMethod string
	params       []any
	deliver      func(json.RawMessage)
	closeCh      func()
}

// Client implements Subscriber over gorilla/websocket.
type Client struct {
	endpoint string
	cfg      Config
	logger   *log.Logger

	conn   *websocket.Conn
	connMu sync.Mutex

	closed       atomic.Bool
	reconnecting atomic.Bool
	requestID    atomic.Uint64

	subs   map[int64]*subscription
	subsMu sync.RWMutex

	pending   map[uint64]chan int64
	pendingMu sync.Mutex

	done chan struct{}
	wg   sync.WaitGroup
}

var _ Subscriber = (*Client)(nil)

// Dial connects to a WebSocket endpoint. A nil config uses defaults.
func Dial(ctx context.Context, endpoint string, config *Config) (*Client, error) {
	cfg := DefaultConfig()
	if config != nil {
		cfg = *config
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "[ws] ", log.LstdFlags)
	}

	c := &Client{
		endpoint: endpoint,
		cfg:      cfg,
		logger:   logger,
		subs:     make(map[int64]*subscription),
		pending:  make(map[uint64]chan int64),
		done:     make(chan struct{}),
	}

	if err := c.connect(ctx); err != nil {
		return nil, err
	}

	c.wg.Add(2)
	go c.readLoop()
	go c.pingLoop()

	return c, nil
}

func (c *Client) connect(ctx context.Context) error {
	c.connMu.Lock()
	defer c.connMu.Unlock()

	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	conn, _, err := dialer.DialContext(ctx, c.endpoint, nil)
	if err != nil {
		return fmt.Errorf("websocket dial: %w", err)
	}
	c.conn = conn
	return nil
}

// SubscribeLogs implements Subscriber.
func (c *Client) SubscribeLogs(ctx context.Context, filter LogsFilter) (<-chan LogNotification, error) {
	var selector any
	if len(filter.Mentions) > 0 {
		mentions := make([]string, len(filter.Mentions))
		for i, pk := range filter.Mentions {
			mentions[i] = pk.String()
		}
		selector = map[string]any{"mentions": mentions}
	} else {
		selector = "all"
	}

	params := []any{selector}
	if c.cfg.Commitment != "" {
		params = append(params, map[string]string{"commitment": string(c.cfg.Commitment)})
	}

	ch := make(chan LogNotification, notifyBuffer)
	sub := &subscription{
		method:       "logsSubscribe",
		notifyMethod: "logsNotification",
		params:       params,
		deliver: func(result json.RawMessage) {
			var payload struct {
				Context struct {
					Slot uint64 `json:"slot"`
				} `json:"context"`
				Value struct {
					Signature string   `json:"signature"`
					Logs      []string `json:"logs"`
					Err       any      `json:"err"`
				} `json:"value"`
			}
			if err := json.Unmarshal(result, &payload); err != nil {
				c.logger.Printf("drop malformed logs notification: %v", err)
				return
			}
			notif := LogNotification{
				Signature: payload.Value.Signature,
				Slot:      payload.Context.Slot,
				Logs:      payload.Value.Logs,
				Err:       payload.Value.Err,
			}
			select {
			case ch <- notif:
			case <-c.done:
			}
		},
		closeCh: func() { close(ch) },
	}

	if _, err := c.subscribe(ctx, sub); err != nil {
		return nil, err
	}
	return ch, nil
}

// SubscribeSlots implements Subscriber.
func (c *Client) SubscribeSlots(ctx context.Context) (<-chan SlotNotification, error) {
	ch := make(chan SlotNotification, notifyBuffer)
	sub := &subscription{
		method:       "slotSubscribe",
		notifyMethod: "slotNotification",
		deliver: func(result json.RawMessage) {
			var notif SlotNotification
			if err := json.Unmarshal(result, &notif); err != nil {
				c.logger.Printf("drop malformed slot notification: %v", err)
				return
			}
			select {
			case ch <- notif:
			case <-c.done:
			}
		},
		closeCh: func() { close(ch) },
	}

	if _, err := c.subscribe(ctx, sub); err != nil {
		return nil, err
	}
	return ch, nil
}

// subscribe issues the subscription request, waits for the server-assigned
// id and registers the subscription under it.
func (c *Client) subscribe(ctx context.Context, sub *subscription) (int64, error) {
	subID, err := c.requestSubscription(ctx, sub.method, sub.params)
	if err != nil {
		return 0, err
	}

	c.subsMu.Lock()
	c.subs[subID] = sub
	c.subsMu.Unlock()
	return subID, nil
}

// requestSubscription performs the subscribe round trip without touching
// the registry. Also used for resubscription after reconnect.
func (c *Client) requestSubscription(ctx context.Context, method string, params []any) (int64, error) {
	if c.closed.Load() {
		return 0, fmt.Errorf("client closed")
	}

	reqID := c.requestID.Add(1)
	req := rpc.Request{
		JSONRPC: "2.0",
		ID:      reqID,
		Method:  method,
		Params:  params,
	}

	confirmCh := make(chan int64, 1)
	c.pendingMu.Lock()
	c.pending[reqID] = confirmCh
	c.pendingMu.Unlock()

	discard := func() {
		c.pendingMu.Lock()
		delete(c.pending, reqID)
		c.pendingMu.Unlock()
	}

	c.connMu.Lock()
	if c.conn == nil {
		c.connMu.Unlock()
		discard()
		return 0, fmt.Errorf("not connected")
	}
	c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteTimeout))
	err := c.conn.WriteJSON(req)
	c.connMu.Unlock()

	if err != nil {
		discard()
		return 0, fmt.Errorf("write subscribe: %w", err)
	}

	select {
	case subID := <-confirmCh:
		return subID, nil
	case <-time.After(c.cfg.SubscribeTimeout):
		discard()
		return 0, fmt.Errorf("subscription confirmation timeout after %s", c.cfg.SubscribeTimeout)
	case <-c.done:
		return 0, fmt.Errorf("client closed")
	case <-ctx.Done():
		discard()
		return 0, ctx.Err()
	}
}

// Close implements Subscriber.
func (c *Client) Close() error {
	if c.closed.Swap(true) {
		return nil
	}

	close(c.done)

	c.connMu.Lock()
	if c.conn != nil {
		c.conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		c.conn.Close()
	}
	c.connMu.Unlock()

	c.subsMu.Lock()
	for id, sub := range c.subs {
		sub.closeCh()
		delete(c.subs, id)
	}
	c.subsMu.Unlock()

	c.pendingMu.Lock()
	for id, ch := range c.pending {
		close(ch)
		delete(c.pending, id)
	}
	c.pendingMu.Unlock()

	c.wg.Wait()
	return nil
}

// inboundMessage is the union of everything the server sends: subscription
// confirmations, error responses and notifications.
type inboundMessage struct {
	ID     uint64          `json:"id,omitempty"`
	Method string          `json:"method,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  *rpc.NodeError  `json:"error,omitempty"`
	Params *struct {
		Subscription int64           `json:"subscription"`
		Result       json.RawMessage `json:"result"`
	} `json:"params,omitempty"`
}

func (c *Client) readLoop() {
	defer c.wg.Done()

	reconnectDelay := c.cfg.ReconnectDelay

	for !c.closed.Load() {
		c.connMu.Lock()
		conn := c.conn
		c.connMu.Unlock()

		if conn == nil {
			select {
			case <-c.done:
				return
			case <-time.After(100 * time.Millisecond):
				continue
			}
		}

		conn.SetReadDeadline(time.Now().Add(c.cfg.ReadTimeout))
		_, message, err := conn.ReadMessage()
		if err != nil {
			if c.closed.Load() {
				return
			}

			if !c.reconnecting.Swap(true) {
				go c.reconnect(reconnectDelay)
			}
			reconnectDelay *= 2
			if reconnectDelay > c.cfg.MaxReconnectDelay {
				reconnectDelay = c.cfg.MaxReconnectDelay
			}

			select {
			case <-c.done:
				return
			case <-time.After(100 * time.Millisecond):
				continue
			}
		}

		reconnectDelay = c.cfg.ReconnectDelay
		c.handleMessage(message)
	}
}

func (c *Client) handleMessage(message []byte) {
	var msg inboundMessage
	if err := json.Unmarshal(message, &msg); err != nil {
		c.logger.Printf("drop unparseable message: %v", err)
		return
	}

	switch {
	case msg.Params != nil:
		c.subsMu.RLock()
		sub := c.subs[msg.Params.Subscription]
		c.subsMu.RUnlock()
		if sub != nil && sub.notifyMethod == msg.Method {
			sub.deliver(msg.Params.Result)
		}

	case msg.Error != nil:
		// Subscription request rejected; the caller times out.
		c.logger.Printf("error response: %v", msg.Error)

	case msg.Result != nil:
		var subID int64
		if err := json.Unmarshal(msg.Result, &subID); err != nil {
			return
		}
		c.pendingMu.Lock()
		ch, ok := c.pending[msg.ID]
		if ok {
			delete(c.pending, msg.ID)
		}
		c.pendingMu.Unlock()
		if ok {
			select {
			case ch <- subID:
			default:
			}
		}
	}
}

// reconnect re-establishes the connection and renews all subscriptions.
func (c *Client) reconnect(delay time.Duration) {
	defer c.reconnecting.Store(false)

	if c.closed.Load() {
		return
	}

	select {
	case <-c.done:
		return
	case <-time.After(delay):
	}

	c.connMu.Lock()
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
	c.connMu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := c.connect(ctx); err != nil {
		c.logger.Printf("reconnect failed: %v", err)
		return
	}
	c.logger.Printf("reconnected to %s", c.endpoint)

	c.resubscribeAll()
}

func (c *Client) resubscribeAll() {
	c.subsMu.RLock()
	active := make(map[int64]*subscription, len(c.subs))
	for id, sub := range c.subs {
		active[id] = sub
	}
	c.subsMu.RUnlock()

	for oldID, sub := range active {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		newID, err := c.requestSubscription(ctx, sub.method, sub.params)
		cancel()
		if err != nil {
			c.logger.Printf("resubscribe %s: %v", sub.method, err)
			continue
		}

		c.subsMu.Lock()
		delete(c.subs, oldID)
		c.subs[newID] = sub
		c.subsMu.Unlock()
	}
}

func (c *Client) pingLoop() {
	defer c.wg.Done()

	ticker := time.NewTicker(c.cfg.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.connMu.Lock()
			if c.conn != nil {
				c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteTimeout))
				// A failed ping surfaces as a read error and triggers
				// the reconnect path.
				c.conn.WriteMessage(websocket.PingMessage, nil)
			}
			c.connMu.Unlock()
		}
	}
}
