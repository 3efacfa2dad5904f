package services

import (
	"context"
	"sort"
	"time"

	"github.com/moodmate/moodmate-backend/internal/models"
	"github.com/moodmate/moodmate-backend/internal/store"
)

// MoodReader is the slice of the mood store the aggregation engine needs.
type MoodReader interface {
	Find(ctx context.Context, q store.MoodQuery) ([]models.Mood, error)
}

// AggregationService computes the fixed set of aggregate views over mood
// entries: monthly summaries, emoji/day statistics and day-bucketed trends.
// All grouping happens in memory so the views stay independent of the
// store's native aggregation language.
type AggregationService struct {
	Moods MoodReader
}

func NewAggregationService(moods MoodReader) *AggregationService {
	return &AggregationService{Moods: moods}
}

// EmojiSummary is one group of the monthly summary.
type EmojiSummary struct {
	Emoji string   `json:"emoji"`
	Count int      `json:"count"`
	Notes []string `json:"notes"`
}

// DayBucket counts one emoji on one calendar day.
type DayBucket struct {
	Emoji string `json:"emoji"`
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// EmojiCount is the total-per-emoji projection of the statistics view.
type EmojiCount struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

// TrendSeries holds two parallel sequences: ISO dates ascending and the
// number of moods logged on each. Days with no entries are absent.
type TrendSeries struct {
	Dates  []string `json:"dates"`
	Counts []int    `json:"counts"`
}

const dayFormat = "2006-01-02"

// MonthlySummary groups one user's entries for a calendar month by emoji.
// The window is half-open: [first of month, first of next month) in the
// server's timezone. Groups are sorted by count descending; ties keep
// first-seen order. No entries means an empty slice, not an error.
func (s *AggregationService) MonthlySummary(ctx context.Context, userID string, year, month int) ([]EmojiSummary, error) {
	if month < 1 || month > 12 || year < 1 || year > 9999 {
		return nil, ErrInvalidRange
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	to := from.AddDate(0, 1, 0)

	moods, err := s.Moods.Find(ctx, store.MoodQuery{
		UserID:    userID,
		From:      &from,
		To:        &to,
		Ascending: true,
	})
	if err != nil {
		return nil, err
	}

	groups, order := groupBy(moods, func(m models.Mood) string { return m.Emoji })

	summary := make([]EmojiSummary, 0, len(order))
	for _, emoji := range order {
		entries := groups[emoji]
		notes := make([]string, 0, len(entries))
		for _, m := range entries {
			notes = append(notes, m.Note)
		}
		summary = append(summary, EmojiSummary{Emoji: emoji, Count: len(entries), Notes: notes})
	}

	// Stable keeps the first-seen order among equal counts.
	sort.SliceStable(summary, func(i, j int) bool {
		return summary[i].Count > summary[j].Count
	})
	return summary, nil
}

type emojiDay struct {
	Date  string
	Emoji string
}

// Statistics buckets entries by (emoji, calendar day) and returns per-bucket
// counts in chronological order. userID empty aggregates across all users.
func (s *AggregationService) Statistics(ctx context.Context, userID string) ([]DayBucket, error) {
	moods, err := s.Moods.Find(ctx, store.MoodQuery{UserID: userID, Ascending: true})
	if err != nil {
		return nil, err
	}

	groups, order := groupBy(moods, func(m models.Mood) emojiDay {
		return emojiDay{Date: m.CreatedAt.Format(dayFormat), Emoji: m.Emoji}
	})

	buckets := make([]DayBucket, 0, len(order))
	for _, key := range order {
		buckets = append(buckets, DayBucket{Emoji: key.Emoji, Date: key.Date, Count: len(groups[key])})
	}
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Date < buckets[j].Date
	})
	return buckets, nil
}

// EmojiTotals collapses day buckets into total counts per emoji, keeping the
// buckets' first-seen emoji order. The sum per emoji always equals the sum
// of its day buckets, since both views come from the same grouping.
func EmojiTotals(buckets []DayBucket) []EmojiCount {
	idx := make(map[string]int)
	totals := make([]EmojiCount, 0)
	for _, b := range buckets {
		if i, ok := idx[b.Emoji]; ok {
			totals[i].Count += b.Count
			continue
		}
		idx[b.Emoji] = len(totals)
		totals = append(totals, EmojiCount{Emoji: b.Emoji, Count: b.Count})
	}
	return totals
}

// Trends buckets entries by calendar day across the given window (nil bounds
// mean the full history) and returns a sparse day-by-day series.
func (s *AggregationService) Trends(ctx context.Context, userID string, from, to *time.Time) (TrendSeries, error) {
	moods, err := s.Moods.Find(ctx, store.MoodQuery{
		UserID:    userID,
		From:      from,
		To:        to,
		Ascending: true,
	})
	if err != nil {
		return TrendSeries{}, err
	}

	groups, order := groupBy(moods, func(m models.Mood) string {
		return m.CreatedAt.Format(dayFormat)
	})
	sort.Strings(order)

	series := TrendSeries{
		Dates:  make([]string, 0, len(order)),
		Counts: make([]int, 0, len(order)),
	}
	for _, day := range order {
		series.Dates = append(series.Dates, day)
		series.Counts = append(series.Counts, len(groups[day]))
	}
	return series, nil
}

// groupBy buckets items by key, returning the buckets plus the keys in
// first-seen order so callers can iterate deterministically.
func groupBy[T any, K comparable](items []T, key func(T) K) (map[K][]T, []K) {
	groups := make(map[K][]T)
	var order []K
	for _, item := range items {
		k := key(item)
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], item)
	}
	return groups, order
}

// ParseDateFilter converts optional startDate/endDate strings (YYYY-MM-DD)
// into an inclusive start-of-day / end-of-day window expressed as a
// half-open [from, to) pair. Either bound may be empty; a bound that is
// present but unparsable yields ErrInvalidDateRange.
func ParseDateFilter(startDate, endDate string) (from, to *time.Time, err error) {
	if startDate != "" {
		t, perr := time.ParseInLocation(dayFormat, startDate, time.Local)
		if perr != nil {
			return nil, nil, ErrInvalidDateRange
		}
		from = &t
	}
	if endDate != "" {
		t, perr := time.ParseInLocation(dayFormat, endDate, time.Local)
		if perr != nil {
			return nil, nil, ErrInvalidDateRange
		}
		// End bound is inclusive of the whole day.
		end := t.AddDate(0, 0, 1)
		to = &end
	}
	return from, to, nil
}
