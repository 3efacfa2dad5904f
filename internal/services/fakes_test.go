package services_test

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/moodmate/moodmate-backend/internal/models"
	"github.com/moodmate/moodmate-backend/internal/store"
)

// fakeMoodStore is an in-memory MoodReader/RecentMoodLister for service tests.
type fakeMoodStore struct {
	moods []models.Mood
}

func (f *fakeMoodStore) Find(_ context.Context, q store.MoodQuery) ([]models.Mood, error) {
	var out []models.Mood
	for _, m := range f.moods {
		if q.UserID != "" && m.UserID != q.UserID {
			continue
		}
		if q.From != nil && m.CreatedAt.Before(*q.From) {
			continue
		}
		if q.To != nil && !m.CreatedAt.Before(*q.To) {
			continue
		}
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if q.Ascending {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[j].CreatedAt.Before(out[i].CreatedAt)
	})
	if q.Limit > 0 && int64(len(out)) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (f *fakeMoodStore) Recent(ctx context.Context, userID string, limit int64) ([]models.Mood, error) {
	return f.Find(ctx, store.MoodQuery{UserID: userID, Limit: limit})
}

func (f *fakeMoodStore) add(userID, emoji, note, day string) {
	createdAt, err := time.ParseInLocation("2006-01-02", day, time.Local)
	if err != nil {
		panic(err)
	}
	// Spread entries logged on the same day a minute apart so insertion
	// order is also chronological order.
	createdAt = createdAt.Add(time.Duration(len(f.moods)) * time.Minute)
	f.moods = append(f.moods, models.Mood{
		UserID:    userID,
		Emoji:     emoji,
		Note:      note,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	})
}

// fakeUserStore is an in-memory UserStore for share-link tests.
type fakeUserStore struct {
	users map[uuid.UUID]*models.User
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	f := &fakeUserStore{users: make(map[uuid.UUID]*models.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserStore) Create(_ context.Context, u *models.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) GetByShareSecret(_ context.Context, secret string) (*models.User, error) {
	if secret == "" {
		return nil, store.ErrNotFound
	}
	for _, u := range f.users {
		if u.ShareSecret == secret {
			return u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) SetSharingEnabled(_ context.Context, id uuid.UUID, enabled bool) error {
	u, ok := f.users[id]
	if !ok {
		return store.ErrNotFound
	}
	u.SharingEnabled = enabled
	return nil
}

func (f *fakeUserStore) SetShareSecret(_ context.Context, id uuid.UUID, secret string) error {
	u, ok := f.users[id]
	if !ok {
		return store.ErrNotFound
	}
	u.ShareSecret = secret
	return nil
}
