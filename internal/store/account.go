package store

import (
	"sync"
	"time"

	"github.com/efreitasn/minibroker/internal/domain"
)

// AccountStore holds the session account's cash balance and holding set.
// Reads return value copies; the compound Apply methods mutate balance
// and holdings together under one lock so no reader observes a trade
// half-applied.
type AccountStore struct {
	mu       sync.RWMutex
	balance  domain.Balance
	holdings map[string]*domain.Holding // instrument_id → holding
	order    []string                   // first-purchase order, for stable listings
}

// NewAccountStore creates an account with the given opening balance and
// no holdings.
func NewAccountStore(opening domain.Balance) *AccountStore {
	return &AccountStore{
		balance:  opening,
		holdings: make(map[string]*domain.Holding),
		order:    make([]string, 0),
	}
}

// Balance returns the current cash balance.
func (s *AccountStore) Balance() domain.Balance {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.balance
}

// Holding returns a value copy of the holding for the given instrument,
// and whether one exists.
func (s *AccountStore) Holding(instrumentID string) (domain.Holding, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.holdings[instrumentID]
	if !ok {
		return domain.Holding{}, false
	}
	return *h, true
}

// Holds reports whether the account has a position in the instrument.
func (s *AccountStore) Holds(instrumentID string) bool {
	_, ok := s.Holding(instrumentID)
	return ok
}

// HoldingCount returns the number of distinct instruments held.
func (s *AccountStore) HoldingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.holdings)
}

// Holdings returns value copies of every holding in first-purchase order.
func (s *AccountStore) Holdings() []domain.Holding {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Holding, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, *s.holdings[id])
	}
	return result
}

// ApplyBuy debits the given currency by cost and upserts the holding for
// the instrument in one atomic step. A repeat purchase folds the new lot
// into the weighted average price, rounded to 2 decimals. It returns a
// copy of the resulting holding.
func (s *AccountStore) ApplyBuy(instrumentID string, quantity int64, price, cost float64, currency domain.Currency, now time.Time) domain.Holding {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.balance.Add(currency, -cost)

	h, ok := s.holdings[instrumentID]
	if ok {
		newQuantity := h.Quantity + quantity
		newAvg := (h.AvgPrice*float64(h.Quantity) + price*float64(quantity)) / float64(newQuantity)
		h.Quantity = newQuantity
		h.AvgPrice = domain.Round2(newAvg)
		return *h
	}

	h = &domain.Holding{
		InstrumentID: instrumentID,
		Quantity:     quantity,
		AvgPrice:     price,
		PurchaseDate: now,
	}
	s.holdings[instrumentID] = h
	s.order = append(s.order, instrumentID)
	return *h
}

// ApplySell credits the given currency by value and decrements the
// holding in one atomic step. When the sale exhausts the position the
// holding is removed entirely; removed reports whether that happened.
func (s *AccountStore) ApplySell(instrumentID string, quantity int64, value float64, currency domain.Currency) (removed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.balance.Add(currency, value)

	h := s.holdings[instrumentID]
	if h.Quantity == quantity {
		delete(s.holdings, instrumentID)
		for i, id := range s.order {
			if id == instrumentID {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return true
	}
	h.Quantity -= quantity
	return false
}
