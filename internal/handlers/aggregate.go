package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/moodmate/moodmate-backend/internal/services"
)

type SummaryResponse struct {
	Success bool                    `json:"success"`
	Year    int                     `json:"year"`
	Month   int                     `json:"month"`
	Summary []services.EmojiSummary `json:"summary"`
}

type StatisticsResponse struct {
	Success    bool                  `json:"success"`
	Statistics []services.DayBucket  `json:"statistics"`
	Totals     []services.EmojiCount `json:"totals"`
}

type TrendsResponse struct {
	Success bool     `json:"success"`
	Dates   []string `json:"dates"`
	Counts  []int    `json:"counts"`
}

// GetMonthlySummary returns the caller's per-emoji groups for one month.
func GetMonthlySummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		respondUnauthorized(w)
		return
	}

	year, yerr := strconv.Atoi(chi.URLParam(r, "year"))
	month, merr := strconv.Atoi(chi.URLParam(r, "month"))
	if yerr != nil || merr != nil {
		respondServiceError(w, r, services.ErrInvalidRange)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	summary, err := aggregation.MonthlySummary(ctx, userID.String(), year, month)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, SummaryResponse{
		Success: true,
		Year:    year,
		Month:   month,
		Summary: summary,
	})
}

// GetStatistics returns the caller's (emoji, day) buckets plus the derived
// per-emoji totals.
func GetStatistics(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		respondUnauthorized(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	buckets, err := aggregation.Statistics(ctx, userID.String())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, StatisticsResponse{
		Success:    true,
		Statistics: buckets,
		Totals:     services.EmojiTotals(buckets),
	})
}

// GetTrends returns the caller's day-by-day mood counts as two parallel
// sequences, ascending by date. Days without entries are omitted.
func GetTrends(w http.ResponseWriter, r *http.Request) {
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

	series, err := aggregation.Trends(ctx, userID.String(), from, to)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, TrendsResponse{
		Success: true,
		Dates:   series.Dates,
		Counts:  series.Counts,
	})
}
