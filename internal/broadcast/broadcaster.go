package broadcast

import (
	"context"
	"log/slog"
	"time"

	"github.com/efreitasn/minibroker/internal/engine"
	"github.com/efreitasn/minibroker/internal/store"
)

// Broadcaster is the session broadcast loop: on a fixed period it
// advances the price feed, re-ranks the movers board, and publishes the
// four session snapshots (price catalog, portfolio, balance, trading
// limits) to the hub. The timer is only one trigger for a snapshot —
// BroadcastNow publishes synchronously, which post-trade pushes and tests
// use without waiting on a real clock.
type Broadcaster struct {
	hub      *Hub
	feed     *engine.PriceFeed
	board    *engine.MoversBoard
	catalog  *store.CatalogStore
	account  *store.AccountStore
	valuer   *engine.Valuer
	gate     *engine.LimitsGate
	interval time.Duration
	logger   *slog.Logger
}

// NewBroadcaster creates a broadcaster with the given dependencies.
func NewBroadcaster(
	hub *Hub,
	feed *engine.PriceFeed,
	board *engine.MoversBoard,
	catalog *store.CatalogStore,
	account *store.AccountStore,
	valuer *engine.Valuer,
	gate *engine.LimitsGate,
	interval time.Duration,
	logger *slog.Logger,
) *Broadcaster {
	return &Broadcaster{
		hub:      hub,
		feed:     feed,
		board:    board,
		catalog:  catalog,
		account:  account,
		valuer:   valuer,
		gate:     gate,
		interval: interval,
		logger:   logger,
	}
}

// Run drives the loop until ctx is cancelled, then clears the subscriber
// lists. One full tick runs before the first timer period so clients
// joining at startup see fresh data.
func (b *Broadcaster) Run(ctx context.Context) {
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	b.Tick()
	for {
		select {
		case <-ctx.Done():
			b.hub.Clear()
			b.logger.Info("broadcast loop stopped")
			return
		case <-ticker.C:
			b.Tick()
		}
	}
}

// Tick advances the feed one step and publishes all snapshots.
func (b *Broadcaster) Tick() {
	b.feed.Tick()
	b.board.Reload(b.catalog.List())
	b.BroadcastNow()
}

// BroadcastNow composes and publishes the four snapshot messages from
// current state, without touching the feed.
func (b *Broadcaster) BroadcastNow() {
	b.hub.Publish(KindStockUpdate, b.catalog.ByMarket())
	b.hub.Publish(KindPortfolioUpdate, b.valuer.Value(b.account.Holdings()))
	b.hub.Publish(KindBalanceUpdate, b.account.Balance())
	b.hub.Publish(KindTradingLimitsUpdate, b.gate.Snapshot(b.account))
}
