package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/moodmate/moodmate-backend/internal/services"
	"github.com/moodmate/moodmate-backend/internal/store"
)

const publicBoardCacheKey = "public_board"

// boardLimit caps how many recent moods the public board shows.
const boardLimit = 100

type BoardEntry struct {
	Emoji     string    `json:"emoji"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type PublicBoardResponse struct {
	Success bool                  `json:"success"`
	Moods   []BoardEntry          `json:"moods"`
	Totals  []services.EmojiCount `json:"totals"`
}

// GetPublicBoard serves the anonymous cross-user board: the most recent
// moods (no usernames, no ids) plus global per-emoji totals. Cached in
// Redis with a short TTL.
func GetPublicBoard(w http.ResponseWriter, r *http.Request) {
	var cached PublicBoardResponse
	if hit, _ := services.Cache.Get(publicBoardCacheKey, &cached); hit {
		respondJSON(w, http.StatusOK, cached)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	recent, err := moodStore.Find(ctx, store.MoodQuery{Limit: boardLimit})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	entries := make([]BoardEntry, 0, len(recent))
	for _, m := range recent {
		entries = append(entries, BoardEntry{
			Emoji:     m.Emoji,
			Note:      m.Note,
			CreatedAt: m.CreatedAt,
		})
	}

	buckets, err := aggregation.Statistics(ctx, "")
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	resp := PublicBoardResponse{
		Success: true,
		Moods:   entries,
		Totals:  services.EmojiTotals(buckets),
	}
	services.Cache.Set(publicBoardCacheKey, resp, services.BoardCacheTTL)

	respondJSON(w, http.StatusOK, resp)
}
