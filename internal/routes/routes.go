package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/moodmate/moodmate-backend/internal/handlers"
)

func SetupRoutes(r *chi.Mux) {
	// Auth routes
	r.Post("/api/auth/signup", handlers.Signup)
	r.Post("/api/auth/signin", handlers.Signin)
	r.Post("/api/auth/signout", handlers.Signout)
	r.Get("/api/auth/me", handlers.GetMe)
	r.Post("/api/auth/toggle-sharing", handlers.ToggleSharing)

	// Mood CRUD and filtering
	r.Post("/api/moods", handlers.CreateMood)
	r.Get("/api/moods", handlers.GetMoods)
	r.Put("/api/moods/{id}", handlers.UpdateMood)
	r.Delete("/api/moods/{id}", handlers.DeleteMood)

	// Aggregate views
	r.Get("/api/moods/summary/{year}/{month}", handlers.GetMonthlySummary)
	r.Get("/api/moods/statistics", handlers.GetStatistics)
	r.Get("/api/moods/trends", handlers.GetTrends)

	// Sharing. Issue/disable need a session; viewing is public, the token
	// in the URL is the credential.
	r.Post("/api/moods/share", handlers.IssueShareLink)
	r.Delete("/api/moods/share", handlers.DisableSharing)
	r.Get("/api/moods/share/{token}", handlers.GetSharedMoods)

	// Emoji suggestions
	r.Post("/api/moods/suggest-emojis", handlers.SuggestEmojis)

	// Public board (REST snapshot + live WebSocket feed)
	r.Get("/api/moods/public", handlers.GetPublicBoard)
	r.Get("/ws/board", handlers.BoardWebSocket)
}
