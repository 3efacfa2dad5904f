package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

type SuggestEmojisRequest struct {
	Note string `json:"note"`
}

type SuggestEmojisResponse struct {
	Success bool     `json:"success"`
	Emojis  []string `json:"emojis"`
}

// SuggestEmojis returns candidate emoji for a note fragment, based on the
// built-in keyword table plus the caller's own recent entries.
func SuggestEmojis(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		respondUnauthorized(w)
		return
	}

	var req SuggestEmojisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	emojis, err := suggester.Suggest(ctx, userID.String(), req.Note)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, SuggestEmojisResponse{Success: true, Emojis: emojis})
}
