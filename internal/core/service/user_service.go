package service

import (
	"context"
	"fmt"
	"time"

	"github.com/PullStackDeveloper/ntd-calculator-user/internal/core/domain"
	"github.com/PullStackDeveloper/ntd-calculator-user/internal/core/repository"
	"golang.org/x/crypto/bcrypt"
)

const BcryptCost = 10

// UserService provides directory operations over the user store.
type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// FindByUsername returns (nil, nil) when the user does not exist.
func (s *UserService) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.userRepo.FindByUsername(ctx, username)
}

// Create hashes the plaintext password with bcrypt (salt embedded in the
// hash) and persists a new active user. Returns domain.ErrUsernameTaken
// when the username is already in use; the duplicate is detected by the
// store's uniqueness constraint, not a pre-check, so concurrent
// registrations of the same username cannot race past each other.
func (s *UserService) Create(ctx context.Context, username, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.NewUser(username, string(hash))
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateStatus sets the account status of an existing user. Returns
// domain.ErrUserNotFound when the username does not exist. Status domain
// membership is the caller's responsibility.
func (s *UserService) UpdateStatus(ctx context.Context, username string, status domain.Status) (*domain.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	user.Status = status
	user.UpdatedAt = time.Now()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// List returns all users ordered by username.
func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.List(ctx)
}
