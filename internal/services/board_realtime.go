package services

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/moodmate/moodmate-backend/internal/database"
)

// BoardEvent is the payload broadcast over Redis and WebSocket whenever a
// mood is logged. It carries only what the public board shows.
type BoardEvent struct {
	Emoji     string    `json:"emoji"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// boardChannel is the Redis pub/sub channel for board events.
const boardChannel = "board:moods"

// boardHub fans incoming Redis messages out to local WebSocket subscribers.
type boardHub struct {
	mu          sync.Mutex
	nextID      int
	subscribers map[int]chan BoardEvent
}

var (
	hub          = &boardHub{subscribers: make(map[int]chan BoardEvent)}
	boardStarted sync.Once
)

// PublishBoardEvent pushes a new mood onto the Redis channel so every server
// instance can forward it to its connected board viewers. Failures are
// logged and swallowed; the board feed is best-effort.
func PublishBoardEvent(ctx context.Context, evt BoardEvent) {
	payload, err := json.Marshal(evt)
	if err != nil {
		return
	}
	if err := database.RedisClient.Publish(ctx, boardChannel, payload).Err(); err != nil {
		log.Printf("board: publish failed: %v", err)
	}
}

// SubscribeBoard registers a board viewer and returns its event channel plus
// an unsubscribe func. The Redis subscriber is started on first use.
func SubscribeBoard() (<-chan BoardEvent, func()) {
	boardStarted.Do(startBoardSubscriber)

	hub.mu.Lock()
	id := hub.nextID
	hub.nextID++
	ch := make(chan BoardEvent, 16)
	hub.subscribers[id] = ch
	hub.mu.Unlock()

	return ch, func() {
		hub.mu.Lock()
		if c, ok := hub.subscribers[id]; ok {
			delete(hub.subscribers, id)
			close(c)
		}
		hub.mu.Unlock()
	}
}

func startBoardSubscriber() {
	go func() {
		pubsub := database.RedisClient.Subscribe(context.Background(), boardChannel)
		defer pubsub.Close()

		for msg := range pubsub.Channel() {
			var evt BoardEvent
			if err := json.Unmarshal([]byte(msg.Payload), &evt); err != nil {
				continue
			}

			hub.mu.Lock()
			for _, ch := range hub.subscribers {
				// Drop rather than block when a viewer is slow.
				select {
				case ch <- evt:
				default:
				}
			}
			hub.mu.Unlock()
		}
	}()
}
