package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/moodmate/moodmate-backend/internal/services"
	"github.com/moodmate/moodmate-backend/internal/store"
)

// Package-level collaborators, wired once from main before the router starts.
var (
	moodStore    store.MoodStore
	userStore    store.UserStore
	aggregation  *services.AggregationService
	shareService *services.ShareService
	suggester    *services.SuggestService
)

// Init wires the handler package to its stores and services.
func Init(moods store.MoodStore, users store.UserStore, host string) {
	moodStore = moods
	userStore = users
	aggregation = services.NewAggregationService(moods)
	shareService = services.NewShareService(users, host)
	suggester = services.NewSuggestService(moods)
}

func extractBearerToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return header
}

// requireAuth validates the session and returns the authenticated user's ID.
// Returns (uuid.Nil, false) if not authenticated.
func requireAuth(r *http.Request) (uuid.UUID, bool) {
	token := extractBearerToken(r.Header.Get("Authorization"))
	if token == "" {
		return uuid.Nil, false
	}
	userID, ok, err := services.ValidateSession(token)
	if err != nil || !ok {
		return uuid.Nil, false
	}
	return userID, true
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondMessage(w http.ResponseWriter, status int, success bool, message string) {
	respondJSON(w, status, map[string]interface{}{
		"success": success,
		"message": message,
	})
}

func respondUnauthorized(w http.ResponseWriter) {
	respondMessage(w, http.StatusUnauthorized, false, "Authentication required")
}

// respondServiceError maps domain errors onto the HTTP taxonomy. Unexpected
// errors are logged with the request path and reported generically.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidRange):
		respondMessage(w, http.StatusBadRequest, false, "Invalid year or month")
	case errors.Is(err, services.ErrInvalidDateRange):
		respondMessage(w, http.StatusBadRequest, false, "Invalid date range")
	case errors.Is(err, services.ErrMissingInput):
		respondMessage(w, http.StatusBadRequest, false, "Missing required field(s)")
	case errors.Is(err, services.ErrInvalidLink):
		respondMessage(w, http.StatusBadRequest, false, "Invalid link")
	case errors.Is(err, services.ErrSharingDisabled):
		respondMessage(w, http.StatusForbidden, false, "User has disabled sharing")
	case errors.Is(err, store.ErrNotFound):
		// Absent and not-owned intentionally look the same.
		respondMessage(w, http.StatusNotFound, false, "Mood entry not found, or you don't have access to it")
	default:
		log.Printf("[%s %s] internal error: %v", r.Method, r.URL.Path, err)
		respondMessage(w, http.StatusInternalServerError, false, "Something went wrong")
	}
}
