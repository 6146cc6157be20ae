// Package store holds the data-access layer. Handlers depend on the
// interfaces; the pgx-backed implementations are wired in at startup.
package store

import (
	"context"
	"errors"

	"camp-backend/internal/models"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateUsername = errors.New("username already exists")
)

type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type CampgroundStore interface {
	Create(ctx context.Context, cg *models.Campground) error
	GetByID(ctx context.Context, id string) (*models.Campground, error)
	List(ctx context.Context) ([]models.Campground, error)
	Update(ctx context.Context, cg *models.Campground) error
	Delete(ctx context.Context, id string) error
}

type ReviewStore interface {
	Create(ctx context.Context, rv *models.Review) error
	GetByID(ctx context.Context, id string) (*models.Review, error)
	ListByCampground(ctx context.Context, campgroundID string) ([]models.Review, error)
	Delete(ctx context.Context, id string) error
}
