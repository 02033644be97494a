package service

import (
	"errors"
	"testing"

	"github.com/efreitasn/minibroker/internal/domain"
	"github.com/efreitasn/minibroker/internal/engine"
	"github.com/efreitasn/minibroker/internal/store"
)

func newMarketService() *MarketService {
	catalog := store.NewCatalogStore(domain.DefaultCatalog())
	board := engine.NewMoversBoard()
	board.Reload(catalog.List())
	return NewMarketService(catalog, board)
}

func TestMarketService_AllStocks(t *testing.T) {
	svc := newMarketService()

	all := svc.AllStocks()
	if len(all.Domestic) != 5 || len(all.International) != 5 || len(all.Crypto) != 5 {
		t.Errorf("AllStocks = %d/%d/%d, want 5/5/5",
			len(all.Domestic), len(all.International), len(all.Crypto))
	}
}

func TestMarketService_StocksByMarket(t *testing.T) {
	svc := newMarketService()

	for _, market := range []string{"domestic", "international", "crypto"} {
		stocks, err := svc.StocksByMarket(market)
		if err != nil {
			t.Fatalf("StocksByMarket(%s): %v", market, err)
		}
		if len(stocks) != 5 {
			t.Errorf("StocksByMarket(%s) = %d instruments, want 5", market, len(stocks))
		}
	}

	var vErr *domain.ValidationError
	if _, err := svc.StocksByMarket("forex"); !errors.As(err, &vErr) {
		t.Errorf("StocksByMarket(forex) = %v, want ValidationError", err)
	}
}

func TestMarketService_Get(t *testing.T) {
	svc := newMarketService()

	inst, err := svc.Get("1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if inst.Code != "005930" {
		t.Errorf("Code = %s, want 005930", inst.Code)
	}

	if _, err := svc.Get("999"); !errors.Is(err, domain.ErrInstrumentNotFound) {
		t.Errorf("Get(999) = %v, want ErrInstrumentNotFound", err)
	}
}

func TestMarketService_TopMovers(t *testing.T) {
	svc := newMarketService()

	movers, err := svc.TopMovers(3)
	if err != nil {
		t.Fatalf("TopMovers: %v", err)
	}
	if len(movers) != 3 {
		t.Fatalf("len = %d, want 3", len(movers))
	}
	for i := 1; i < len(movers); i++ {
		if movers[i].ChangePercent > movers[i-1].ChangePercent {
			t.Errorf("movers not sorted: %v before %v", movers[i-1].ChangePercent, movers[i].ChangePercent)
		}
	}

	var vErr *domain.ValidationError
	if _, err := svc.TopMovers(0); !errors.As(err, &vErr) {
		t.Errorf("TopMovers(0) = %v, want ValidationError", err)
	}
}
