package engine

import (
	"context"
	"sync"
	"time"

	"github.com/efreitasn/minibroker/internal/domain"
	"github.com/efreitasn/minibroker/internal/store"
	"github.com/google/uuid"
)

// ExecutionEngine validates and applies buy and sell instructions against
// the account, the live catalog, and the limits gate. One mutex serializes
// executions end to end, so every operation is atomic from the point of
// view of any other request or the broadcast loop: the first failing
// precondition aborts before any mutation.
type ExecutionEngine struct {
	mu      sync.Mutex
	catalog *store.CatalogStore
	account *store.AccountStore
	trades  *store.TradeStore
	gate    *LimitsGate
	delay   time.Duration
}

// NewExecutionEngine creates an engine with the given dependencies.
// delay is the artificial processing delay applied before each execution;
// 0 disables it.
func NewExecutionEngine(
	catalog *store.CatalogStore,
	account *store.AccountStore,
	trades *store.TradeStore,
	gate *LimitsGate,
	delay time.Duration,
) *ExecutionEngine {
	return &ExecutionEngine{
		catalog: catalog,
		account: account,
		trades:  trades,
		gate:    gate,
		delay:   delay,
	}
}

// Buy executes a purchase of quantity units at the instrument's current
// live price. Preconditions, first failure wins: positive quantity, limits
// gate (daily cap then type cap), instrument exists, sufficient balance in
// the market's currency. On success the balance debit, holding upsert,
// trade record, and daily-allowance consumption land together.
func (e *ExecutionEngine) Buy(ctx context.Context, instrumentID string, quantity int64) (*domain.TradeRecord, error) {
	if quantity <= 0 {
		return nil, &domain.ValidationError{Message: "quantity must be a positive integer"}
	}

	// The artificial delay resolves before any state is read or written,
	// so no other request can observe a half-applied trade.
	if err := e.wait(ctx); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.gate.Check(instrumentID, e.account); err != nil {
		return nil, err
	}

	inst, err := e.catalog.Get(instrumentID)
	if err != nil {
		return nil, err
	}

	// Always the live price at execution time, never a client-side quote.
	totalCost := inst.Price * float64(quantity)
	currency := inst.Market.Currency()
	if e.account.Balance().Get(currency) < totalCost {
		return nil, domain.ErrInsufficientBalance
	}

	now := time.Now().UTC()
	e.account.ApplyBuy(inst.ID, quantity, inst.Price, totalCost, currency, now)

	rec := &domain.TradeRecord{
		TradeID:      uuid.New().String(),
		Type:         domain.TradeTypeBuy,
		InstrumentID: inst.ID,
		Name:         inst.Name,
		Code:         inst.Code,
		Quantity:     quantity,
		Price:        inst.Price,
		TotalAmount:  totalCost,
		ExecutedAt:   now,
	}
	e.trades.Append(rec)
	e.gate.RecordPurchase()

	return rec, nil
}

// Sell executes a sale of quantity units at the instrument's current live
// price. Preconditions: the holding exists and covers the quantity. Sells
// are never subject to the limits gate. Selling the full position removes
// the holding entirely.
func (e *ExecutionEngine) Sell(ctx context.Context, instrumentID string, quantity int64) (*domain.TradeRecord, error) {
	if quantity <= 0 {
		return nil, &domain.ValidationError{Message: "quantity must be a positive integer"}
	}

	if err := e.wait(ctx); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	holding, ok := e.account.Holding(instrumentID)
	if !ok {
		return nil, domain.ErrNotHeld
	}
	if holding.Quantity < quantity {
		return nil, domain.ErrInsufficientHoldings
	}

	inst, err := e.catalog.Get(instrumentID)
	if err != nil {
		return nil, err
	}

	sellValue := inst.Price * float64(quantity)
	currency := inst.Market.Currency()
	e.account.ApplySell(inst.ID, quantity, sellValue, currency)

	rec := &domain.TradeRecord{
		TradeID:      uuid.New().String(),
		Type:         domain.TradeTypeSell,
		InstrumentID: inst.ID,
		Name:         inst.Name,
		Code:         inst.Code,
		Quantity:     quantity,
		Price:        inst.Price,
		TotalAmount:  sellValue,
		ExecutedAt:   time.Now().UTC(),
	}
	e.trades.Append(rec)

	return rec, nil
}

// wait blocks for the configured artificial delay, honoring ctx.
func (e *ExecutionEngine) wait(ctx context.Context) error {
	if e.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(e.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
