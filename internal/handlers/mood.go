package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/moodmate/moodmate-backend/internal/models"
	"github.com/moodmate/moodmate-backend/internal/services"
	"github.com/moodmate/moodmate-backend/internal/store"
	"github.com/moodmate/moodmate-backend/pkg/utils"
)

type CreateMoodRequest struct {
	Emoji string `json:"emoji"`
	Note  string `json:"note"`
}

// UpdateMoodRequest uses pointers so "field absent" and "field empty" are
// distinguishable; at least one field must be present.
type UpdateMoodRequest struct {
	Emoji *string `json:"emoji"`
	Note  *string `json:"note"`
}

type MoodResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Mood    *models.Mood `json:"mood,omitempty"`
}

type MoodListResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Moods   []models.Mood `json:"moods"`
	Total   int           `json:"total"`
}

// CreateMood logs a new mood entry for the authenticated user.
func CreateMood(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		respondUnauthorized(w)
		return
	}

	var req CreateMoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}
	if req.Emoji == "" {
		respondMessage(w, http.StatusBadRequest, false, "Emoji is required")
		return
	}
	if !utils.IsEmojiOnly(req.Emoji) {
		respondMessage(w, http.StatusBadRequest, false, "Invalid emoji, it should consist only of emoji characters")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	now := time.Now()
	mood := &models.Mood{
		ID:        primitive.NewObjectID(),
		CreatedAt: now,
		UpdatedAt: now,
		UserID:    userID.String(),
		Emoji:     req.Emoji,
		Note:      req.Note,
	}
	if err := moodStore.Create(ctx, mood); err != nil {
		respondServiceError(w, r, err)
		return
	}

	// Feed the live board and drop the cached snapshot.
	services.PublishBoardEvent(ctx, services.BoardEvent{
		Emoji:     mood.Emoji,
		Note:      mood.Note,
		CreatedAt: mood.CreatedAt,
	})
	services.Cache.Delete(publicBoardCacheKey)

	respondJSON(w, http.StatusCreated, MoodResponse{
		Success: true,
		Message: "Mood logged successfully",
		Mood:    mood,
	})
}

// UpdateMood replaces the emoji and/or note of an entry the caller owns.
func UpdateMood(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		respondUnauthorized(w)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		respondMessage(w, http.StatusBadRequest, false, "Mood entry id is required")
		return
	}

	var req UpdateMoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}
	if req.Emoji == nil && req.Note == nil {
		respondMessage(w, http.StatusBadRequest, false, "Provide an emoji or a note to update")
		return
	}
	if req.Emoji != nil && !utils.IsEmojiOnly(*req.Emoji) {
		respondMessage(w, http.StatusBadRequest, false, "Invalid emoji, it should consist only of emoji characters")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	mood, err := moodStore.Update(ctx, id, userID.String(), store.MoodUpdate{
		Emoji: req.Emoji,
		Note:  req.Note,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, MoodResponse{Success: true, Mood: mood})
}

// DeleteMood removes an entry the caller owns.
func DeleteMood(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		respondUnauthorized(w)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		respondMessage(w, http.StatusBadRequest, false, "Mood entry id is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := moodStore.Delete(ctx, id, userID.String()); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondMessage(w, http.StatusOK, true, "Mood entry deleted successfully")
}

// GetMoods returns the caller's entries, optionally bounded by
// startDate/endDate (YYYY-MM-DD, inclusive) and ordered newest-first unless
// chronologicalOrder=true.
func GetMoods(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		respondUnauthorized(w)
		return
	}

	from, to, err := services.ParseDateFilter(
		r.URL.Query().Get("startDate"),
		r.URL.Query().Get("endDate"),
	)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	moods, err := moodStore.Find(ctx, store.MoodQuery{
		UserID:    userID.String(),
		From:      from,
		To:        to,
		Ascending: r.URL.Query().Get("chronologicalOrder") == "true",
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if moods == nil {
		moods = []models.Mood{}
	}

	respondJSON(w, http.StatusOK, MoodListResponse{
		Success: true,
		Moods:   moods,
		Total:   len(moods),
	})
}
