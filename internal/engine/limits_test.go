package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/efreitasn/minibroker/internal/domain"
	"github.com/efreitasn/minibroker/internal/store"
)

func TestLimitsGate_DailyCap(t *testing.T) {
	gate := NewLimitsGate(5)
	account := store.NewAccountStore(domain.Balance{KRW: 1_000_000})

	if err := gate.Check("1", account); err != nil {
		t.Fatalf("fresh gate rejected purchase: %v", err)
	}

	gate.RecordPurchase()

	if err := gate.Check("2", account); !errors.Is(err, domain.ErrDailyLimitUsed) {
		t.Errorf("Check after purchase = %v, want ErrDailyLimitUsed", err)
	}

	gate.ResetForNewDay()

	if err := gate.Check("2", account); err != nil {
		t.Errorf("Check after reset = %v, want nil", err)
	}
}

func TestLimitsGate_TypeCap(t *testing.T) {
	gate := NewLimitsGate(2)
	account := store.NewAccountStore(domain.Balance{KRW: 10_000_000})
	now := time.Now().UTC()
	account.ApplyBuy("1", 1, 100, 100, domain.CurrencyKRW, now)
	account.ApplyBuy("2", 1, 100, 100, domain.CurrencyKRW, now)

	if err := gate.Check("3", account); !errors.Is(err, domain.ErrMaxStockTypes) {
		t.Errorf("Check new instrument at cap = %v, want ErrMaxStockTypes", err)
	}

	// Topping up an instrument already held is never capped by type.
	if err := gate.Check("1", account); err != nil {
		t.Errorf("Check held instrument at cap = %v, want nil", err)
	}
}

func TestLimitsGate_DailyCapCheckedBeforeTypeCap(t *testing.T) {
	gate := NewLimitsGate(1)
	account := store.NewAccountStore(domain.Balance{KRW: 10_000_000})
	account.ApplyBuy("1", 1, 100, 100, domain.CurrencyKRW, time.Now().UTC())
	gate.RecordPurchase()

	// Both caps are violated; the daily cap wins.
	if err := gate.Check("2", account); !errors.Is(err, domain.ErrDailyLimitUsed) {
		t.Errorf("Check = %v, want ErrDailyLimitUsed", err)
	}
}

func TestLimitsGate_Snapshot(t *testing.T) {
	gate := NewLimitsGate(5)
	account := store.NewAccountStore(domain.Balance{KRW: 10_000_000})
	account.ApplyBuy("1", 1, 100, 100, domain.CurrencyKRW, time.Now().UTC())

	got := gate.Snapshot(account)
	want := domain.TradingLimits{CanBuyToday: true, MaxStockTypes: 5, CurrentStockTypes: 1}
	if got != want {
		t.Errorf("Snapshot = %+v, want %+v", got, want)
	}

	gate.RecordPurchase()

	if got := gate.Snapshot(account); got.CanBuyToday {
		t.Error("Snapshot.CanBuyToday = true after purchase, want false")
	}
}
