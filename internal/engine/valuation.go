package engine

import (
	"github.com/efreitasn/minibroker/internal/domain"
	"github.com/efreitasn/minibroker/internal/store"
)

// RateProvider supplies the conversion rate from a balance currency into
// KRW for valuation purposes. The conversion never applies to the cash
// balance itself.
type RateProvider interface {
	RateToKRW(c domain.Currency) float64
}

// FixedRate is a RateProvider with a constant USD→KRW rate.
type FixedRate struct {
	USDKRW float64
}

// RateToKRW implements RateProvider.
func (r FixedRate) RateToKRW(c domain.Currency) float64 {
	if c == domain.CurrencyKRW {
		return 1
	}
	return r.USDKRW
}

// Valuer recomputes the derived portfolio aggregates. It is a
// deterministic fold over the holding set and the live catalog, with no
// error states of its own.
type Valuer struct {
	catalog *store.CatalogStore
	rates   RateProvider
}

// NewValuer creates a Valuer over the given catalog and rate provider.
func NewValuer(catalog *store.CatalogStore, rates RateProvider) *Valuer {
	return &Valuer{catalog: catalog, rates: rates}
}

// Value computes the portfolio for the given holdings against live
// prices. Non-domestic positions are valued in KRW at the provider's
// rate; totalReturnPercent is 0 when totalCost is 0.
func (v *Valuer) Value(holdings []domain.Holding) domain.Portfolio {
	p := domain.Portfolio{
		Holdings: make([]domain.PortfolioHolding, 0, len(holdings)),
	}

	for _, h := range holdings {
		inst, err := v.catalog.Get(h.InstrumentID)
		if err != nil {
			// Holdings only ever reference the fixed catalog.
			continue
		}
		rate := v.rates.RateToKRW(inst.Market.Currency())
		p.TotalValue += inst.Price * float64(h.Quantity) * rate
		p.TotalCost += h.AvgPrice * float64(h.Quantity) * rate
		p.Holdings = append(p.Holdings, domain.PortfolioHolding{
			Instrument:   inst,
			Quantity:     h.Quantity,
			AvgPrice:     h.AvgPrice,
			PurchaseDate: h.PurchaseDate,
		})
	}

	p.TotalReturn = p.TotalValue - p.TotalCost
	if p.TotalCost > 0 {
		p.TotalReturnPercent = p.TotalReturn / p.TotalCost * 100
	}
	return p
}
