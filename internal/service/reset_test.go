package service

import (
	"context"
	"testing"

	"github.com/efreitasn/minibroker/internal/broadcast"
)

func TestDailyResetJob(t *testing.T) {
	f := newTradingFixture()

	if _, err := f.svc.Buy(context.Background(), "1", 1); err != nil {
		t.Fatalf("Buy: %v", err)
	}
	if f.svc.Limits().CanBuyToday {
		t.Fatal("allowance still armed after buy")
	}

	var published int
	f.hub.Subscribe(broadcast.KindTradingLimitsUpdate, func(broadcast.Message) { published++ })

	job := NewDailyResetJob(f.gate, f.broadcaster)
	if job.Name() == "" {
		t.Error("empty job name")
	}
	if err := job.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !f.svc.Limits().CanBuyToday {
		t.Error("allowance not re-armed by reset job")
	}
	if published != 1 {
		t.Errorf("reset published %d limits snapshots, want 1", published)
	}
}
