package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Username     string `json:"username"`
	PasswordHash string `json:"-"`

	// SharingEnabled gates every outstanding share link at use time.
	SharingEnabled bool `json:"sharing_enabled"`
	// ShareSecret is the opaque credential embedded in share links.
	// Empty until the user issues a link; rotated on every issue.
	ShareSecret string `json:"-"`
}
