package engine

import (
	"math"
	"math/rand"
	"sync"

	"github.com/efreitasn/minibroker/internal/domain"
	"github.com/efreitasn/minibroker/internal/store"
)

// Perturbation spans per market, in local-currency units. Each tick draws
// a uniform delta in (-span/2, span/2). Domestic carries the widest
// nominal span purely because KRW prices are quoted in larger units.
const (
	spanDomestic      = 2000
	spanInternational = 5
	spanCrypto        = 1000
)

// Price floors per market. Micro-priced crypto floors at 0.001, everything
// else at 1000 local-currency units.
const (
	floorMicro   = 0.001
	floorDefault = 1000
)

// PriceFeed mutates the shared instrument catalog in place, one bounded
// random perturbation per instrument per tick. It is pure simulation:
// a replaceable stochastic stub, not a model of market microstructure.
type PriceFeed struct {
	catalog *store.CatalogStore
	mu      sync.Mutex // rand.Rand is not safe for concurrent use
	rng     *rand.Rand
}

// NewPriceFeed creates a feed over the given catalog. The rand source is
// injected so tests can run deterministic ticks.
func NewPriceFeed(catalog *store.CatalogStore, rng *rand.Rand) *PriceFeed {
	return &PriceFeed{catalog: catalog, rng: rng}
}

// Tick applies one perturbation to every instrument, atomically with
// respect to catalog readers.
func (f *PriceFeed) Tick() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.catalog.Update(func(items []*domain.Instrument) {
		for _, inst := range items {
			f.perturb(inst)
		}
	})
}

func (f *PriceFeed) perturb(inst *domain.Instrument) {
	micro := inst.MicroPriced()

	delta := (f.rng.Float64() - 0.5) * perturbationSpan(inst.Market)
	floor := float64(floorDefault)
	if micro {
		floor = floorMicro
	}
	newPrice := math.Max(inst.Price+delta, floor)

	// The pre-tick baseline is the price the current change was measured
	// against; the new change is always relative to that same baseline.
	baseline := inst.Price - inst.Change
	newChange := newPrice - baseline

	if micro {
		inst.Price = domain.Round4(newPrice)
	} else {
		inst.Price = domain.Round2(newPrice)
	}
	inst.Change = domain.Round2(newChange)
	inst.ChangePercent = changePercent(newPrice, newChange)
}

func perturbationSpan(m domain.Market) float64 {
	switch m {
	case domain.MarketCrypto:
		return spanCrypto
	case domain.MarketInternational:
		return spanInternational
	default:
		return spanDomestic
	}
}

// changePercent computes change/(price-change)*100 rounded to 2 decimals,
// or 0 when the baseline is 0.
func changePercent(price, change float64) float64 {
	baseline := price - change
	if baseline == 0 {
		return 0
	}
	return domain.Round2(change / baseline * 100)
}
