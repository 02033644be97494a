package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/efreitasn/minibroker/internal/broadcast"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

const wsWriteTimeout = 10 * time.Second

// StreamHandler upgrades GET /ws to a websocket and relays every hub
// message to the client as JSON.
type StreamHandler struct {
	hub     *broadcast.Hub
	origins []string
	logger  *slog.Logger
}

// NewStreamHandler creates a new StreamHandler.
func NewStreamHandler(hub *broadcast.Hub, origins []string, logger *slog.Logger) *StreamHandler {
	return &StreamHandler{hub: hub, origins: origins, logger: logger}
}

// Serve handles GET /ws. The connection subscribes to all four message
// kinds; snapshots the client cannot keep up with are dropped rather than
// blocking the broadcast loop.
func (h *StreamHandler) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.origins,
	})
	if err != nil {
		h.logger.Warn("websocket accept failed", slog.String("error", err.Error()))
		return
	}
	defer conn.Close(websocket.StatusInternalError, "")

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	msgs := make(chan broadcast.Message, 32)
	type sub struct {
		kind broadcast.Kind
		id   string
	}
	subs := make([]sub, 0, len(broadcast.Kinds))
	for _, kind := range broadcast.Kinds {
		id := h.hub.Subscribe(kind, func(m broadcast.Message) {
			select {
			case msgs <- m:
			default: // slow consumer, skip this snapshot
			}
		})
		subs = append(subs, sub{kind: kind, id: id})
	}
	defer func() {
		for _, s := range subs {
			h.hub.Unsubscribe(s.kind, s.id)
		}
	}()

	// Clients never send payloads; the read loop only detects close.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.Read(ctx); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "")
			return
		case m := <-msgs:
			wctx, wcancel := context.WithTimeout(ctx, wsWriteTimeout)
			err := wsjson.Write(wctx, conn, m)
			wcancel()
			if err != nil {
				return
			}
		}
	}
}
