package store

import (
	"sync"

	"github.com/efreitasn/minibroker/internal/domain"
)

// CatalogStore holds the fixed instrument catalog, with a primary index
// by instrument ID. Instruments are seeded once at construction and are
// never created or destroyed afterwards; only their quote fields mutate,
// via Update.
type CatalogStore struct {
	mu    sync.RWMutex
	order []string // seed order, for stable listings
	byID  map[string]*domain.Instrument
}

// NewCatalogStore creates a catalog seeded with the given instruments.
func NewCatalogStore(seed []domain.Instrument) *CatalogStore {
	s := &CatalogStore{
		order: make([]string, 0, len(seed)),
		byID:  make(map[string]*domain.Instrument, len(seed)),
	}
	for _, inst := range seed {
		inst := inst
		s.order = append(s.order, inst.ID)
		s.byID[inst.ID] = &inst
	}
	return s
}

// Get retrieves an instrument by ID as a value copy. It returns
// domain.ErrInstrumentNotFound if the ID is not in the catalog.
func (s *CatalogStore) Get(id string) (domain.Instrument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inst, ok := s.byID[id]
	if !ok {
		return domain.Instrument{}, domain.ErrInstrumentNotFound
	}
	return *inst, nil
}

// List returns value copies of every instrument in seed order.
func (s *CatalogStore) List() []domain.Instrument {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Instrument, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, *s.byID[id])
	}
	return result
}

// ListByMarket returns value copies of the instruments in one market,
// in seed order.
func (s *CatalogStore) ListByMarket(m domain.Market) []domain.Instrument {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Instrument, 0, len(s.order))
	for _, id := range s.order {
		if s.byID[id].Market == m {
			result = append(result, *s.byID[id])
		}
	}
	return result
}

// ByMarket returns the whole catalog grouped by market.
func (s *CatalogStore) ByMarket() domain.MarketStocks {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var g domain.MarketStocks
	for _, id := range s.order {
		inst := *s.byID[id]
		switch inst.Market {
		case domain.MarketDomestic:
			g.Domestic = append(g.Domestic, inst)
		case domain.MarketInternational:
			g.International = append(g.International, inst)
		case domain.MarketCrypto:
			g.Crypto = append(g.Crypto, inst)
		}
	}
	return g
}

// Update runs fn against the live instruments under the write lock.
// The price feed uses this to apply a whole tick atomically.
func (s *CatalogStore) Update(fn func(items []*domain.Instrument)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]*domain.Instrument, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, s.byID[id])
	}
	fn(items)
}
