package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/moodmate/moodmate-backend/internal/services"
)

var boardUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The board is public and read-only; CORS is handled at the HTTP layer.
		return true
	},
}

// BoardWebSocket streams newly logged moods to public board viewers.
// No authentication: the feed carries the same anonymous data as the board.
func BoardWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := boardUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	events, unsubscribe := services.SubscribeBoard()
	defer unsubscribe()

	// Writer goroutine: forward board events to this connection.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for evt := range events {
			if err := conn.WriteJSON(evt); err != nil {
				return
			}
		}
	}()

	conn.SetReadLimit(1024)
	_ = conn.SetReadDeadline(time.Now().Add(90 * time.Second))
	conn.SetPongHandler(func(appData string) error {
		_ = conn.SetReadDeadline(time.Now().Add(90 * time.Second))
		return nil
	})

	// Reader loop: the feed is one-way, we only watch for pings and close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
		select {
		case <-done:
			return
		default:
		}
	}
}
