package engine

import (
	"math"
	"testing"
	"time"

	"github.com/efreitasn/minibroker/internal/domain"
	"github.com/efreitasn/minibroker/internal/store"
)

func TestValuer_Empty(t *testing.T) {
	catalog := store.NewCatalogStore(domain.DefaultCatalog())
	valuer := NewValuer(catalog, FixedRate{USDKRW: 1200})

	p := valuer.Value(nil)

	if p.TotalValue != 0 || p.TotalCost != 0 || p.TotalReturn != 0 || p.TotalReturnPercent != 0 {
		t.Errorf("empty portfolio = %+v, want all zeros", p)
	}
	if p.Holdings == nil || len(p.Holdings) != 0 {
		t.Errorf("Holdings = %v, want empty non-nil slice", p.Holdings)
	}
}

func TestValuer_DomesticOnly(t *testing.T) {
	catalog := store.NewCatalogStore([]domain.Instrument{
		{ID: "1", Name: "Samsung Electronics", Code: "005930", Market: domain.MarketDomestic, Price: 72000},
	})
	valuer := NewValuer(catalog, FixedRate{USDKRW: 1200})

	p := valuer.Value([]domain.Holding{
		{InstrumentID: "1", Quantity: 5, AvgPrice: 71500, PurchaseDate: time.Now().UTC()},
	})

	if p.TotalValue != 360000 {
		t.Errorf("TotalValue = %v, want 360000", p.TotalValue)
	}
	if p.TotalCost != 357500 {
		t.Errorf("TotalCost = %v, want 357500", p.TotalCost)
	}
	if p.TotalReturn != 2500 {
		t.Errorf("TotalReturn = %v, want 2500", p.TotalReturn)
	}
	want := 2500.0 / 357500.0 * 100
	if math.Abs(p.TotalReturnPercent-want) > 1e-9 {
		t.Errorf("TotalReturnPercent = %v, want %v", p.TotalReturnPercent, want)
	}
}

func TestValuer_ConvertsNonDomesticAtFixedRate(t *testing.T) {
	catalog := store.NewCatalogStore([]domain.Instrument{
		{ID: "6", Name: "Apple", Code: "AAPL", Market: domain.MarketInternational, Price: 180},
		{ID: "11", Name: "Bitcoin", Code: "BTC", Market: domain.MarketCrypto, Price: 60000},
	})
	valuer := NewValuer(catalog, FixedRate{USDKRW: 1200})

	p := valuer.Value([]domain.Holding{
		{InstrumentID: "6", Quantity: 2, AvgPrice: 175},
		{InstrumentID: "11", Quantity: 1, AvgPrice: 58000},
	})

	wantValue := (180.0*2 + 60000.0) * 1200
	wantCost := (175.0*2 + 58000.0) * 1200
	if p.TotalValue != wantValue {
		t.Errorf("TotalValue = %v, want %v", p.TotalValue, wantValue)
	}
	if p.TotalCost != wantCost {
		t.Errorf("TotalCost = %v, want %v", p.TotalCost, wantCost)
	}
}

func TestValuer_HoldingsCarryLiveQuote(t *testing.T) {
	catalog := store.NewCatalogStore([]domain.Instrument{
		{ID: "1", Name: "Samsung Electronics", Code: "005930", Market: domain.MarketDomestic, Price: 72000, Change: 2000, ChangePercent: 2.86},
	})
	valuer := NewValuer(catalog, FixedRate{USDKRW: 1200})

	p := valuer.Value([]domain.Holding{{InstrumentID: "1", Quantity: 3, AvgPrice: 70000}})

	if len(p.Holdings) != 1 {
		t.Fatalf("len(Holdings) = %d, want 1", len(p.Holdings))
	}
	h := p.Holdings[0]
	if h.Price != 72000 || h.Change != 2000 {
		t.Errorf("holding quote = price %v change %v, want live 72000/2000", h.Price, h.Change)
	}
	if h.Quantity != 3 || h.AvgPrice != 70000 {
		t.Errorf("holding position = qty %d avg %v, want 3/70000", h.Quantity, h.AvgPrice)
	}
}

func TestFixedRate(t *testing.T) {
	r := FixedRate{USDKRW: 1200}
	if got := r.RateToKRW(domain.CurrencyKRW); got != 1 {
		t.Errorf("RateToKRW(krw) = %v, want 1", got)
	}
	if got := r.RateToKRW(domain.CurrencyUSD); got != 1200 {
		t.Errorf("RateToKRW(usd) = %v, want 1200", got)
	}
}
