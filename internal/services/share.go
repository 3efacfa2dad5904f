package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"

	"github.com/google/uuid"

	"github.com/moodmate/moodmate-backend/internal/models"
	"github.com/moodmate/moodmate-backend/internal/store"
)

// ShareService issues and resolves share links for a user's mood history.
//
// Links use an opaque secret: a random 256-bit value stored on the user row
// and embedded in the link path. Issuing a new link overwrites the stored
// secret, so every earlier link stops resolving. The sharing toggle is
// checked at resolve time, never at issue time.
type ShareService struct {
	Users store.UserStore
	// Host is the externally visible base URL, e.g. https://api.moodmate.app
	Host string
}

func NewShareService(users store.UserStore, host string) *ShareService {
	return &ShareService{Users: users, Host: host}
}

const shareSecretBytes = 32

// IssueLink rotates the user's share secret and returns the full share URL.
func (s *ShareService) IssueLink(ctx context.Context, userID uuid.UUID) (string, error) {
	secretBytes := make([]byte, shareSecretBytes)
	if _, err := rand.Read(secretBytes); err != nil {
		return "", err
	}
	secret := base64.URLEncoding.EncodeToString(secretBytes)

	if err := s.Users.SetShareSecret(ctx, userID, secret); err != nil {
		return "", err
	}
	return s.Host + "/api/moods/share/" + secret, nil
}

// Resolve verifies a share token and returns the user it grants access to.
// Unknown or superseded tokens come back as ErrInvalidLink; a resolvable
// token whose owner has turned sharing off comes back as ErrSharingDisabled.
func (s *ShareService) Resolve(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrInvalidLink
	}

	user, err := s.Users.GetByShareSecret(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidLink
		}
		return nil, err
	}

	if !user.SharingEnabled {
		return nil, ErrSharingDisabled
	}
	return user, nil
}

// DisableSharing turns the user's sharing flag off. Every outstanding link
// stops resolving immediately; calling it twice is a no-op.
func (s *ShareService) DisableSharing(ctx context.Context, userID uuid.UUID) error {
	return s.Users.SetSharingEnabled(ctx, userID, false)
}
