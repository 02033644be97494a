package broadcast

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind identifies one of the snapshot message kinds clients can
// subscribe to.
type Kind string

const (
	KindStockUpdate         Kind = "STOCK_UPDATE"
	KindPortfolioUpdate     Kind = "PORTFOLIO_UPDATE"
	KindBalanceUpdate       Kind = "BALANCE_UPDATE"
	KindTradingLimitsUpdate Kind = "TRADING_LIMITS_UPDATE"
)

// Kinds lists every message kind, in delivery order.
var Kinds = []Kind{KindStockUpdate, KindPortfolioUpdate, KindBalanceUpdate, KindTradingLimitsUpdate}

// Message is a point-in-time snapshot payload delivered to subscribers.
type Message struct {
	Type      Kind      `json:"type"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// Hub is a callback registry decoupling snapshot producers from
// consumers. Callbacks run synchronously on the publisher's goroutine and
// must not block.
type Hub struct {
	mu   sync.RWMutex
	subs map[Kind]map[string]func(Message)
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{
		subs: make(map[Kind]map[string]func(Message)),
	}
}

// Subscribe registers a callback for one message kind and returns the
// subscription ID used to unsubscribe.
func (h *Hub) Subscribe(kind Kind, fn func(Message)) string {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := uuid.New().String()
	if h.subs[kind] == nil {
		h.subs[kind] = make(map[string]func(Message))
	}
	h.subs[kind][id] = fn
	return id
}

// Unsubscribe removes a subscription. Unknown IDs are a no-op.
func (h *Hub) Unsubscribe(kind Kind, id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.subs[kind], id)
}

// Publish delivers data to every subscriber of the kind, stamped with the
// current time.
func (h *Hub) Publish(kind Kind, data any) {
	msg := Message{Type: kind, Data: data, Timestamp: time.Now().UTC()}

	h.mu.RLock()
	fns := make([]func(Message), 0, len(h.subs[kind]))
	for _, fn := range h.subs[kind] {
		fns = append(fns, fn)
	}
	h.mu.RUnlock()

	for _, fn := range fns {
		fn(msg)
	}
}

// SubscriberCount returns the number of subscribers for a kind.
func (h *Hub) SubscriberCount(kind Kind) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subs[kind])
}

// Clear drops every subscription. Called when the session is torn down.
func (h *Hub) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.subs = make(map[Kind]map[string]func(Message))
}
