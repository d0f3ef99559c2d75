package service

import (
	"context"
	"errors"
	"testing"

	"github.com/PullStackDeveloper/ntd-calculator-user/internal/core/domain"
	"github.com/PullStackDeveloper/ntd-calculator-user/internal/infrastructure/sqlite"
	"golang.org/x/crypto/bcrypt"
)

// newTestUserService creates a UserService backed by an in-memory database
func newTestUserService(t *testing.T) (*UserService, func()) {
	t.Helper()

	db, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	return NewUserService(sqlite.NewUserRepository(db)), func() { db.Close() }
}

func TestCreateHashesPassword(t *testing.T) {
	users, cleanup := newTestUserService(t)
	defer cleanup()
	ctx := context.Background()

	created, err := users.Create(ctx, "alice1", "secret123")
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	if created.ID == 0 {
		t.Error("expected a non-zero id to be assigned")
	}
	if created.Status != domain.StatusActive {
		t.Errorf("expected status %q, got %q", domain.StatusActive, created.Status)
	}
	if created.Password == "secret123" {
		t.Error("stored password must not equal the plaintext")
	}

	found, err := users.FindByUsername(ctx, "alice1")
	if err != nil {
		t.Fatalf("failed to find user: %v", err)
	}
	if found == nil {
		t.Fatal("expected user to be found")
	}
	if found.Password == "secret123" {
		t.Error("persisted password must not equal the plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(found.Password), []byte("secret123")); err != nil {
		t.Errorf("persisted hash does not verify against the plaintext: %v", err)
	}
}

func TestCreateDuplicateUsername(t *testing.T) {
	users, cleanup := newTestUserService(t)
	defer cleanup()
	ctx := context.Background()

	first, err := users.Create(ctx, "alice1", "secret123")
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	_, err = users.Create(ctx, "alice1", "otherpassword")
	if !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}

	// The first user must be unaffected by the failed insert.
	found, err := users.FindByUsername(ctx, "alice1")
	if err != nil {
		t.Fatalf("failed to find user: %v", err)
	}
	if found == nil {
		t.Fatal("expected first user to still exist")
	}
	if found.ID != first.ID {
		t.Errorf("expected id %d, got %d", first.ID, found.ID)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(found.Password), []byte("secret123")); err != nil {
		t.Error("first user's password was modified by the failed duplicate insert")
	}
}

func TestFindByUsernameAbsent(t *testing.T) {
	users, cleanup := newTestUserService(t)
	defer cleanup()

	found, err := users.FindByUsername(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("absent user must not be an error, got %v", err)
	}
	if found != nil {
		t.Errorf("expected nil user, got %+v", found)
	}
}

func TestUpdateStatus(t *testing.T) {
	users, cleanup := newTestUserService(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := users.Create(ctx, "alice1", "secret123"); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	updated, err := users.UpdateStatus(ctx, "alice1", domain.StatusInactive)
	if err != nil {
		t.Fatalf("failed to update status: %v", err)
	}
	if updated.Status != domain.StatusInactive {
		t.Errorf("expected status %q, got %q", domain.StatusInactive, updated.Status)
	}

	// The new status must be persisted, not just set on the returned value.
	found, err := users.FindByUsername(ctx, "alice1")
	if err != nil {
		t.Fatalf("failed to find user: %v", err)
	}
	if found.Status != domain.StatusInactive {
		t.Errorf("expected persisted status %q, got %q", domain.StatusInactive, found.Status)
	}
}

func TestUpdateStatusUnknownUser(t *testing.T) {
	users, cleanup := newTestUserService(t)
	defer cleanup()

	_, err := users.UpdateStatus(context.Background(), "nobody", domain.StatusInactive)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
