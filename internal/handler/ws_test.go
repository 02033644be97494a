package handler

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/efreitasn/minibroker/internal/broadcast"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

func TestStreamRelaysHubMessages(t *testing.T) {
	env := newTestEnv()
	token := env.login(t)

	srv := httptest.NewServer(env.router)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	url := "ws" + srv.URL[len("http"):] + "/ws?token=" + token
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	// Wait for the handler to register its subscriptions before publishing.
	deadline := time.Now().Add(5 * time.Second)
	for env.hub.SubscriberCount(broadcast.KindStockUpdate) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("handler never subscribed to the hub")
		}
		time.Sleep(10 * time.Millisecond)
	}

	env.hub.Publish(broadcast.KindBalanceUpdate, map[string]float64{"krw": 1_000_000})

	var msg broadcast.Message
	if err := wsjson.Read(ctx, conn, &msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	if msg.Type != broadcast.KindBalanceUpdate {
		t.Errorf("type = %s, want BALANCE_UPDATE", msg.Type)
	}
	if msg.Timestamp.IsZero() {
		t.Error("timestamp not stamped")
	}
}

func TestStreamRequiresToken(t *testing.T) {
	env := newTestEnv()

	srv := httptest.NewServer(env.router)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := "ws" + srv.URL[len("http"):] + "/ws"
	_, resp, err := websocket.Dial(ctx, url, nil)
	if err == nil {
		t.Fatal("dial without token succeeded")
	}
	if resp != nil && resp.StatusCode != 401 {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}
