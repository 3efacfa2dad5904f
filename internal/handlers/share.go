package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/moodmate/moodmate-backend/internal/models"
	"github.com/moodmate/moodmate-backend/internal/store"
)

type ShareLinkResponse struct {
	Success bool   `json:"success"`
	Link    string `json:"link"`
}

type SharedMoodsResponse struct {
	Success  bool          `json:"success"`
	Username string        `json:"username"`
	Moods    []models.Mood `json:"moods"`
}

// IssueShareLink mints a fresh share link for the caller. Any previously
// issued link stops working the moment the new one exists.
func IssueShareLink(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		respondUnauthorized(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	link, err := shareService.IssueLink(ctx, userID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, ShareLinkResponse{Success: true, Link: link})
}

// DisableSharing turns the caller's sharing flag off; idempotent.
func DisableSharing(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		respondUnauthorized(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := shareService.DisableSharing(ctx, userID); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondMessage(w, http.StatusOK, true, "Sharing disabled")
}

// GetSharedMoods serves a shared user's full mood history. Public by design:
// the token in the URL is the credential, no session is involved.
func GetSharedMoods(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := shareService.Resolve(ctx, token)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	moods, err := moodStore.Find(ctx, store.MoodQuery{UserID: user.ID.String()})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if moods == nil {
		moods = []models.Mood{}
	}

	respondJSON(w, http.StatusOK, SharedMoodsResponse{
		Success:  true,
		Username: user.Username,
		Moods:    moods,
	})
}
