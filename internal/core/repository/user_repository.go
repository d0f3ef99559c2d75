package repository

import (
	"context"

	"github.com/PullStackDeveloper/ntd-calculator-user/internal/core/domain"
)

type UserRepository interface {
	// Create persists a new user and assigns its ID. Returns
	// domain.ErrUsernameTaken when the username is already in use.
	Create(ctx context.Context, user *domain.User) error

	// FindByUsername returns (nil, nil) when no user matches.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)

	// Update persists status and password changes. Returns
	// domain.ErrUserNotFound when the user does not exist.
	Update(ctx context.Context, user *domain.User) error

	List(ctx context.Context) ([]*domain.User, error)
}
