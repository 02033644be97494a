package service

import (
	"fmt"

	"github.com/efreitasn/minibroker/internal/domain"
	"github.com/efreitasn/minibroker/internal/engine"
	"github.com/efreitasn/minibroker/internal/store"
)

// MarketService handles catalog queries.
type MarketService struct {
	catalog *store.CatalogStore
	board   *engine.MoversBoard
}

// NewMarketService creates a MarketService.
func NewMarketService(catalog *store.CatalogStore, board *engine.MoversBoard) *MarketService {
	return &MarketService{catalog: catalog, board: board}
}

// AllStocks returns the whole catalog grouped by market.
func (s *MarketService) AllStocks() domain.MarketStocks {
	return s.catalog.ByMarket()
}

// StocksByMarket returns the instruments of one market.
func (s *MarketService) StocksByMarket(market string) ([]domain.Instrument, error) {
	m := domain.Market(market)
	if !m.Valid() {
		return nil, &domain.ValidationError{
			Message: fmt.Sprintf("unknown market: %s. Must be one of: domestic, international, crypto", market),
		}
	}
	return s.catalog.ListByMarket(m), nil
}

// Get returns a single instrument by ID.
func (s *MarketService) Get(instrumentID string) (domain.Instrument, error) {
	return s.catalog.Get(instrumentID)
}

// TopMovers returns the n instruments with the largest percent change
// across all markets.
func (s *MarketService) TopMovers(n int) ([]domain.Instrument, error) {
	if n <= 0 {
		return nil, &domain.ValidationError{Message: "limit must be a positive integer"}
	}
	return s.board.Top(n), nil
}
