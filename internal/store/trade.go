package store

import (
	"sync"

	"github.com/efreitasn/minibroker/internal/domain"
)

// TradeStore is a thread-safe, append-only in-memory log of executed
// trades. Records are never mutated or deleted once appended.
type TradeStore struct {
	mu     sync.RWMutex
	trades []*domain.TradeRecord // chronological, oldest first
}

// NewTradeStore creates an empty TradeStore.
func NewTradeStore() *TradeStore {
	return &TradeStore{
		trades: make([]*domain.TradeRecord, 0),
	}
}

// Append adds a record to the log.
func (s *TradeStore) Append(t *domain.TradeRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.trades = append(s.trades, t)
}

// Count returns the total number of records in the log.
func (s *TradeStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.trades)
}

// List returns one page of records in reverse chronological order
// (newest first). Pagination is 1-based. It returns value copies for the
// requested page and the total count of records (before pagination).
func (s *TradeStore) List(page, pageSize int) ([]domain.TradeRecord, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := len(s.trades)

	start := (page - 1) * pageSize
	if start >= total {
		return []domain.TradeRecord{}, total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	// Index i of the newest-first view maps to total-1-i in the log.
	result := make([]domain.TradeRecord, 0, end-start)
	for i := start; i < end; i++ {
		result = append(result, *s.trades[total-1-i])
	}
	return result, total
}
