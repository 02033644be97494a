package engine

import (
	"sync"

	"github.com/efreitasn/minibroker/internal/domain"
	"github.com/efreitasn/minibroker/internal/store"
)

// LimitsGate enforces the two orthogonal purchase policies: at most one
// successful buy per trading day, and at most maxStockTypes distinct
// instruments held. Sells are never gated.
type LimitsGate struct {
	mu            sync.Mutex
	canBuyToday   bool
	maxStockTypes int
}

// NewLimitsGate creates a gate armed for a fresh trading day.
func NewLimitsGate(maxStockTypes int) *LimitsGate {
	return &LimitsGate{
		canBuyToday:   true,
		maxStockTypes: maxStockTypes,
	}
}

// Check decides whether a purchase of the instrument may proceed against
// the current holding set. The daily cap is checked first, then the
// type cap; the type cap only applies to instruments not already held.
func (g *LimitsGate) Check(instrumentID string, account *store.AccountStore) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.canBuyToday {
		return domain.ErrDailyLimitUsed
	}
	if !account.Holds(instrumentID) && account.HoldingCount() >= g.maxStockTypes {
		return domain.ErrMaxStockTypes
	}
	return nil
}

// RecordPurchase consumes the daily allowance for the remainder of the
// trading day.
func (g *LimitsGate) RecordPurchase() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.canBuyToday = false
}

// ResetForNewDay re-arms the daily allowance. Called at the trading-day
// boundary by the scheduler, and on login.
func (g *LimitsGate) ResetForNewDay() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.canBuyToday = true
}

// Snapshot returns the limits as seen by clients, with the current
// distinct-holding count filled in from the account.
func (g *LimitsGate) Snapshot(account *store.AccountStore) domain.TradingLimits {
	g.mu.Lock()
	defer g.mu.Unlock()

	return domain.TradingLimits{
		CanBuyToday:       g.canBuyToday,
		MaxStockTypes:     g.maxStockTypes,
		CurrentStockTypes: account.HoldingCount(),
	}
}
