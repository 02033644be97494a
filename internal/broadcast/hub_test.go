package broadcast

import (
	"testing"
	"time"
)

func TestHub_PublishDeliversToSubscribers(t *testing.T) {
	hub := NewHub()

	var got []Message
	hub.Subscribe(KindStockUpdate, func(m Message) {
		got = append(got, m)
	})

	hub.Publish(KindStockUpdate, "payload")

	if len(got) != 1 {
		t.Fatalf("delivered %d messages, want 1", len(got))
	}
	if got[0].Type != KindStockUpdate {
		t.Errorf("Type = %s, want STOCK_UPDATE", got[0].Type)
	}
	if got[0].Data != "payload" {
		t.Errorf("Data = %v, want payload", got[0].Data)
	}
	if got[0].Timestamp.IsZero() {
		t.Error("Timestamp not stamped")
	}
}

func TestHub_KindsAreIsolated(t *testing.T) {
	hub := NewHub()

	var stock, balance int
	hub.Subscribe(KindStockUpdate, func(Message) { stock++ })
	hub.Subscribe(KindBalanceUpdate, func(Message) { balance++ })

	hub.Publish(KindStockUpdate, nil)

	if stock != 1 || balance != 0 {
		t.Errorf("stock=%d balance=%d, want 1/0", stock, balance)
	}
}

func TestHub_Unsubscribe(t *testing.T) {
	hub := NewHub()

	var calls int
	id := hub.Subscribe(KindPortfolioUpdate, func(Message) { calls++ })

	hub.Publish(KindPortfolioUpdate, nil)
	hub.Unsubscribe(KindPortfolioUpdate, id)
	hub.Publish(KindPortfolioUpdate, nil)

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if hub.SubscriberCount(KindPortfolioUpdate) != 0 {
		t.Errorf("SubscriberCount = %d, want 0", hub.SubscriberCount(KindPortfolioUpdate))
	}
}

func TestHub_UnsubscribeUnknownID(t *testing.T) {
	hub := NewHub()
	hub.Unsubscribe(KindStockUpdate, "nope") // must not panic
}

func TestHub_Clear(t *testing.T) {
	hub := NewHub()

	var calls int
	for _, kind := range Kinds {
		hub.Subscribe(kind, func(Message) { calls++ })
	}

	hub.Clear()
	for _, kind := range Kinds {
		hub.Publish(kind, nil)
		if hub.SubscriberCount(kind) != 0 {
			t.Errorf("SubscriberCount(%s) = %d after Clear", kind, hub.SubscriberCount(kind))
		}
	}

	if calls != 0 {
		t.Errorf("calls = %d after Clear, want 0", calls)
	}
}

func TestHub_ConcurrentPublishAndSubscribe(t *testing.T) {
	hub := NewHub()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			id := hub.Subscribe(KindStockUpdate, func(Message) {})
			hub.Unsubscribe(KindStockUpdate, id)
		}
	}()

	for i := 0; i < 100; i++ {
		hub.Publish(KindStockUpdate, i)
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("subscriber goroutine did not finish")
	}
}
