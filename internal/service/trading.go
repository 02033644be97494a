package service

import (
	"context"

	"github.com/efreitasn/minibroker/internal/broadcast"
	"github.com/efreitasn/minibroker/internal/domain"
	"github.com/efreitasn/minibroker/internal/engine"
	"github.com/efreitasn/minibroker/internal/store"
)

// TradeResult is the outcome of a successful execution surfaced to the
// caller.
type TradeResult struct {
	Trade   *domain.TradeRecord
	Message string
}

// HistoryResponse is one page of the trade log, newest first.
type HistoryResponse struct {
	Trades      []domain.TradeRecord `json:"trades"`
	TotalCount  int                  `json:"totalCount"`
	CurrentPage int                  `json:"currentPage"`
	TotalPages  int                  `json:"totalPages"`
	HasMore     bool                 `json:"hasMore"`
}

// TradingService orchestrates trade execution, the derived portfolio and
// limits views, and the trade history. After every successful execution
// it pushes fresh snapshots so subscribers see the mutation without
// waiting for the next timer tick.
type TradingService struct {
	engine      *engine.ExecutionEngine
	trades      *store.TradeStore
	account     *store.AccountStore
	gate        *engine.LimitsGate
	valuer      *engine.Valuer
	broadcaster *broadcast.Broadcaster
	pageSize    int
}

// NewTradingService creates a TradingService. pageSize is the default
// trade-history page size.
func NewTradingService(
	exec *engine.ExecutionEngine,
	trades *store.TradeStore,
	account *store.AccountStore,
	gate *engine.LimitsGate,
	valuer *engine.Valuer,
	broadcaster *broadcast.Broadcaster,
	pageSize int,
) *TradingService {
	return &TradingService{
		engine:      exec,
		trades:      trades,
		account:     account,
		gate:        gate,
		valuer:      valuer,
		broadcaster: broadcaster,
		pageSize:    pageSize,
	}
}

// Buy executes a purchase and pushes fresh snapshots on success.
func (s *TradingService) Buy(ctx context.Context, instrumentID string, quantity int64) (*TradeResult, error) {
	rec, err := s.engine.Buy(ctx, instrumentID, quantity)
	if err != nil {
		return nil, err
	}
	s.broadcaster.BroadcastNow()
	return &TradeResult{Trade: rec, Message: "purchase completed"}, nil
}

// Sell executes a sale and pushes fresh snapshots on success.
func (s *TradingService) Sell(ctx context.Context, instrumentID string, quantity int64) (*TradeResult, error) {
	rec, err := s.engine.Sell(ctx, instrumentID, quantity)
	if err != nil {
		return nil, err
	}
	s.broadcaster.BroadcastNow()
	return &TradeResult{Trade: rec, Message: "sale completed"}, nil
}

// History returns one page of the trade log, newest first. page and
// pageSize fall back to 1 and the configured default when zero; negative
// values are rejected.
func (s *TradingService) History(page, pageSize int) (*HistoryResponse, error) {
	if page == 0 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = s.pageSize
	}
	if page < 0 || pageSize < 0 {
		return nil, &domain.ValidationError{Message: "page and pageSize must be positive integers"}
	}

	trades, total := s.trades.List(page, pageSize)
	totalPages := (total + pageSize - 1) / pageSize
	return &HistoryResponse{
		Trades:      trades,
		TotalCount:  total,
		CurrentPage: page,
		TotalPages:  totalPages,
		HasMore:     page*pageSize < total,
	}, nil
}

// Portfolio recomputes the derived aggregates from the current holdings
// and live prices.
func (s *TradingService) Portfolio() domain.Portfolio {
	return s.valuer.Value(s.account.Holdings())
}

// Balance returns the current cash balance.
func (s *TradingService) Balance() domain.Balance {
	return s.account.Balance()
}

// Limits returns the current trading-limits snapshot.
func (s *TradingService) Limits() domain.TradingLimits {
	return s.gate.Snapshot(s.account)
}
