package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/moodmate/moodmate-backend/internal/models"
)

// UserStore is the persistence interface for user identity, the sharing
// toggle and the share secret.
type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByShareSecret(ctx context.Context, secret string) (*models.User, error)
	SetSharingEnabled(ctx context.Context, id uuid.UUID, enabled bool) error
	// SetShareSecret overwrites the user's share secret, invalidating any
	// link issued with the previous one.
	SetShareSecret(ctx context.Context, id uuid.UUID, secret string) error
}

type postgresUserStore struct {
	db *sql.DB
}

// NewPostgresUserStore returns a UserStore backed by the users table.
func NewPostgresUserStore(db *sql.DB) UserStore {
	return &postgresUserStore{db: db}
}

const userColumns = "id, username, password_hash, sharing_enabled, COALESCE(share_secret, ''), created_at"

func (s *postgresUserStore) scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.SharingEnabled, &u.ShareSecret, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *postgresUserStore) Create(ctx context.Context, u *models.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return s.db.QueryRowContext(ctx, `
		INSERT INTO users (id, username, password_hash, sharing_enabled, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING created_at
	`, u.ID, u.Username, u.PasswordHash, u.SharingEnabled).Scan(&u.CreatedAt)
}

func (s *postgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id)
	return s.scanUser(row)
}

func (s *postgresUserStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE LOWER(username) = LOWER($1)", username)
	return s.scanUser(row)
}

func (s *postgresUserStore) GetByShareSecret(ctx context.Context, secret string) (*models.User, error) {
	if secret == "" {
		return nil, ErrNotFound
	}
	row := s.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE share_secret = $1", secret)
	return s.scanUser(row)
}

func (s *postgresUserStore) SetSharingEnabled(ctx context.Context, id uuid.UUID, enabled bool) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE users SET sharing_enabled = $1 WHERE id = $2", enabled, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *postgresUserStore) SetShareSecret(ctx context.Context, id uuid.UUID, secret string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE users SET share_secret = $1 WHERE id = $2", secret, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
