package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/moodmate/moodmate-backend/internal/models"
	"github.com/moodmate/moodmate-backend/internal/services"
	"github.com/moodmate/moodmate-backend/internal/store"
	"github.com/moodmate/moodmate-backend/pkg/utils"
)

type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SigninRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message,omitempty"`
	Token   string                 `json:"token,omitempty"`
	User    map[string]interface{} `json:"user,omitempty"`
}

func userMap(u *models.User) map[string]interface{} {
	return map[string]interface{}{
		"id":              u.ID.String(),
		"username":        u.Username,
		"sharing_enabled": u.SharingEnabled,
		"created_at":      u.CreatedAt,
	}
}

// Signup handles user registration.
func Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	if err := utils.ValidateUsername(req.Username); err != nil {
		respondMessage(w, http.StatusBadRequest, false, err.Error())
		return
	}
	if len(req.Password) < 8 {
		respondMessage(w, http.StatusBadRequest, false, "Password must be at least 8 characters")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	normalized := utils.NormalizeUsername(req.Username)
	if _, err := userStore.GetByUsername(ctx, normalized); err == nil {
		respondMessage(w, http.StatusConflict, false, "Username is already taken")
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		respondServiceError(w, r, err)
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	user := &models.User{
		Username:       normalized,
		PasswordHash:   hash,
		SharingEnabled: true,
	}
	if err := userStore.Create(ctx, user); err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, AuthResponse{
		Success: true,
		Message: "Account created successfully",
		User:    userMap(user),
	})
}

// Signin verifies credentials and mints a bearer session token.
func Signin(w http.ResponseWriter, r *http.Request) {
	var req SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		respondMessage(w, http.StatusBadRequest, false, "Username and password are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := userStore.GetByUsername(ctx, utils.NormalizeUsername(req.Username))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Same response as a wrong password.
			respondMessage(w, http.StatusUnauthorized, false, "Invalid username or password")
			return
		}
		respondServiceError(w, r, err)
		return
	}

	ok, err := utils.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil || !ok {
		respondMessage(w, http.StatusUnauthorized, false, "Invalid username or password")
		return
	}

	token, err := services.CreateSession(user.ID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, AuthResponse{
		Success: true,
		Token:   token,
		User:    userMap(user),
	})
}

// Signout invalidates the caller's session token.
func Signout(w http.ResponseWriter, r *http.Request) {
	token := extractBearerToken(r.Header.Get("Authorization"))
	if token == "" {
		respondUnauthorized(w)
		return
	}
	if err := services.InvalidateSession(token); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondMessage(w, http.StatusOK, true, "Signed out")
}

// GetMe returns the authenticated user's public profile.
func GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		respondUnauthorized(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := userStore.GetByID(ctx, userID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, AuthResponse{Success: true, User: userMap(user)})
}

// ToggleSharing flips the caller's sharing flag. Outstanding share links are
// honored or rejected at view time based on the current value.
func ToggleSharing(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		respondUnauthorized(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := userStore.GetByID(ctx, userID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if err := userStore.SetSharingEnabled(ctx, userID, !user.SharingEnabled); err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"sharing_enabled": !user.SharingEnabled,
	})
}
