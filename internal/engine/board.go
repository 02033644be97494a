package engine

import (
	"sync"

	"github.com/efreitasn/minibroker/internal/domain"
	"github.com/google/btree"
)

// boardEntry is one instrument on the movers board.
type boardEntry struct {
	ChangePercent float64
	ID            string
	Inst          domain.Instrument
}

// moverLess orders the board by percent change descending, then ID
// ascending, so Min() is the day's biggest gainer.
func moverLess(a, b boardEntry) bool {
	if a.ChangePercent != b.ChangePercent {
		return a.ChangePercent > b.ChangePercent
	}
	return a.ID < b.ID
}

// MoversBoard keeps the catalog sorted by daily percent change using a
// B-tree with a secondary index for O(log n) re-ranking of a single
// instrument after each tick.
type MoversBoard struct {
	mu    sync.RWMutex
	tree  *btree.BTreeG[boardEntry]
	index map[string]boardEntry // instrument_id → current entry
}

// NewMoversBoard creates an empty board.
func NewMoversBoard() *MoversBoard {
	return &MoversBoard{
		tree:  btree.NewG(2, moverLess),
		index: make(map[string]boardEntry),
	}
}

// Reload re-ranks the board from the given catalog snapshot. Stale
// entries are replaced via the secondary index.
func (b *MoversBoard) Reload(items []domain.Instrument) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, inst := range items {
		if old, ok := b.index[inst.ID]; ok {
			b.tree.Delete(old)
		}
		entry := boardEntry{ChangePercent: inst.ChangePercent, ID: inst.ID, Inst: inst}
		b.tree.ReplaceOrInsert(entry)
		b.index[inst.ID] = entry
	}
}

// Top returns the n instruments with the largest percent change,
// best first.
func (b *MoversBoard) Top(n int) []domain.Instrument {
	b.mu.RLock()
	defer b.mu.RUnlock()

	result := make([]domain.Instrument, 0, n)
	b.tree.Ascend(func(e boardEntry) bool {
		result = append(result, e.Inst)
		return len(result) < n
	})
	return result
}

// Len returns the number of instruments on the board.
func (b *MoversBoard) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.tree.Len()
}
