package repository

import (
	"context"
	"errors"

	"goat-dashboard/internal/domain"
)

// ErrUserNotFound is returned when no user matches the lookup key.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines persistence operations for the credential directory.
// Lookups are case-sensitive exact matches.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Count(ctx context.Context) (int64, error)
}
