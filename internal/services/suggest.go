package services

import (
	"context"
	"strings"

	"github.com/moodmate/moodmate-backend/internal/models"
)

// moodSuggestions is the built-in keyword table, loaded once and never
// mutated. Declaration order is the output order for built-in matches.
var moodSuggestions = []suggestion{
	{"happy", "😄"},
	{"sad", "😢"},
	{"love", "❤️"},
	{"excited", "🎉"},
	{"anger", "😡"},
	{"surprise", "😲"},
	{"cool", "😎"},
	{"laughing", "😂"},
	{"crying", "😭"},
	{"sleeping", "😴"},
	{"celebration", "🥳"},
	{"dancing", "💃"},
	{"confused", "😕"},
	{"rainbow", "🌈"},
	{"money", "💰"},
	{"party", "🎉"},
}

type suggestion struct {
	Keyword string
	Emoji   string
}

// RecentMoodLister is the slice of the mood store the suggestion service needs.
type RecentMoodLister interface {
	Recent(ctx context.Context, userID string, limit int64) ([]models.Mood, error)
}

// SuggestService maps free-text notes to candidate emoji by combining the
// built-in keyword table with the user's own recent (note, emoji) history.
type SuggestService struct {
	Moods RecentMoodLister
}

func NewSuggestService(moods RecentMoodLister) *SuggestService {
	return &SuggestService{Moods: moods}
}

// historyLimit caps how many recent entries seed the personal overlay.
const historyLimit = 10

// Suggest returns the emoji of every keyword that appears as a
// case-insensitive substring of note. Built-ins come first, then the user's
// historical overlays in most-recent-first order; on a keyword collision the
// most recent entry wins, including over a built-in. An empty match list is
// not an error; an empty note is.
func (s *SuggestService) Suggest(ctx context.Context, userID, note string) ([]string, error) {
	if note == "" {
		return nil, ErrMissingInput
	}

	recent, err := s.Moods.Recent(ctx, userID, historyLimit)
	if err != nil {
		return nil, err
	}

	emojiFor := make(map[string]string, len(moodSuggestions)+len(recent))
	order := make([]string, 0, len(moodSuggestions)+len(recent))
	for _, b := range moodSuggestions {
		emojiFor[b.Keyword] = b.Emoji
		order = append(order, b.Keyword)
	}

	fromHistory := make(map[string]bool, len(recent))
	for _, m := range recent {
		keyword := m.Note
		if keyword == "" || fromHistory[keyword] {
			// recent is most-recent-first, so the first occurrence wins.
			continue
		}
		fromHistory[keyword] = true
		if _, builtin := emojiFor[keyword]; !builtin {
			order = append(order, keyword)
		}
		emojiFor[keyword] = m.Emoji
	}

	needle := strings.ToLower(note)
	emojis := make([]string, 0)
	for _, keyword := range order {
		if strings.Contains(needle, strings.ToLower(keyword)) {
			emojis = append(emojis, emojiFor[keyword])
		}
	}
	return emojis, nil
}
