// Package store defines the persistence contract shared by the relational
// and flat-file backends. Progress entries are append-only: no store exposes
// an update or delete for them.
package store

import (
	"context"
	"errors"

	"fitmitra/internal/models"
)

var ErrNotFound = errors.New("not found")

// ErrDuplicate reports a username or email uniqueness conflict.
var ErrDuplicate = errors.New("already exists")

type UserStore interface {
	CreateUser(ctx context.Context, username, email, passwordHash string) (int, error)
	UserByUsername(ctx context.Context, username string) (*models.User, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UserByID(ctx context.Context, id int) (*models.User, error)
	TouchLastLogin(ctx context.Context, id int) error
}

type ProfileStore interface {
	SaveProfile(ctx context.Context, p *models.Profile) error
	Profile(ctx context.Context, userID int) (*models.Profile, error)
}

type ProgressStore interface {
	AppendProgress(ctx context.Context, e *models.ProgressEntry) error
	ProgressHistory(ctx context.Context, userID int) ([]models.ProgressEntry, error)
}

// Store is the full contract a deployment backend provides.
type Store interface {
	UserStore
	ProfileStore
	ProgressStore
}
