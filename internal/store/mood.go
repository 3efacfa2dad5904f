package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/moodmate/moodmate-backend/internal/models"
)

// ErrNotFound is returned when a document does not exist or is not owned by
// the requesting user. The two cases are deliberately not distinguished.
var ErrNotFound = errors.New("not found")

// MoodQuery describes a filtered mood lookup. UserID empty means all users
// (public board). From is inclusive, To exclusive.
type MoodQuery struct {
	UserID    string
	From      *time.Time
	To        *time.Time
	Ascending bool
	Limit     int64
}

// MoodUpdate carries the mutable fields of a mood entry. Nil means "leave as is".
type MoodUpdate struct {
	Emoji *string
	Note  *string
}

// MoodStore is the persistence interface for mood entries.
type MoodStore interface {
	Create(ctx context.Context, m *models.Mood) error
	// Update mutates an entry only when both id and owner match.
	Update(ctx context.Context, id, userID string, upd MoodUpdate) (*models.Mood, error)
	// Delete removes an entry only when both id and owner match.
	Delete(ctx context.Context, id, userID string) error
	Find(ctx context.Context, q MoodQuery) ([]models.Mood, error)
	// Recent returns the user's newest entries, most recent first.
	Recent(ctx context.Context, userID string, limit int64) ([]models.Mood, error)
}

type mongoMoodStore struct {
	col *mongo.Collection
}

// NewMongoMoodStore returns a MoodStore backed by the "moods" collection.
func NewMongoMoodStore(db *mongo.Database) MoodStore {
	return &mongoMoodStore{col: db.Collection("moods")}
}

// EnsureMoodIndexes configures indexes for the moods collection.
// Called on startup from main after Mongo has connected.
func EnsureMoodIndexes(ctx context.Context, db *mongo.Database) error {
	col := db.Collection("moods")

	// Compound index on (user_id, created_at) backs every per-user query.
	_, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "created_at", Value: -1},
		},
		Options: options.Index().SetName("idx_user_created"),
	})
	return err
}

func (s *mongoMoodStore) Create(ctx context.Context, m *models.Mood) error {
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	_, err := s.col.InsertOne(ctx, m)
	return err
}

func (s *mongoMoodStore) Update(ctx context.Context, id, userID string, upd MoodUpdate) (*models.Mood, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	set := bson.M{"updated_at": time.Now()}
	if upd.Emoji != nil {
		set["emoji"] = *upd.Emoji
	}
	if upd.Note != nil {
		set["note"] = *upd.Note
	}

	// The filter carries the owner so an entry belonging to someone else
	// behaves exactly like a missing one.
	filter := bson.M{"_id": objectID, "user_id": userID}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Mood
	err = s.col.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (s *mongoMoodStore) Delete(ctx context.Context, id, userID string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := s.col.DeleteOne(ctx, bson.M{"_id": objectID, "user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoMoodStore) Find(ctx context.Context, q MoodQuery) ([]models.Mood, error) {
	filter := bson.M{}
	if q.UserID != "" {
		filter["user_id"] = q.UserID
	}
	created := bson.M{}
	if q.From != nil {
		created["$gte"] = *q.From
	}
	if q.To != nil {
		created["$lt"] = *q.To
	}
	if len(created) > 0 {
		filter["created_at"] = created
	}

	order := -1
	if q.Ascending {
		order = 1
	}
	findOptions := options.Find().SetSort(bson.M{"created_at": order})
	if q.Limit > 0 {
		findOptions.SetLimit(q.Limit)
	}

	cursor, err := s.col.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var moods []models.Mood
	if err := cursor.All(ctx, &moods); err != nil {
		return nil, err
	}
	return moods, nil
}

func (s *mongoMoodStore) Recent(ctx context.Context, userID string, limit int64) ([]models.Mood, error) {
	return s.Find(ctx, MoodQuery{UserID: userID, Limit: limit})
}
