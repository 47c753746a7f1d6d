package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/joinus/backend/internal/model"
)

func newUser(email string) *model.User {
	return &model.User{
		ID:           uuid.New().String(),
		Email:        email,
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Age:          36,
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
}

func TestUserRepository_CreateAndLookup(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := newUser("ada@example.com")
	err := repo.Create(ctx, user)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	byID, err := repo.ByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if byID.Email != "ada@example.com" {
		t.Fatalf("unexpected user: %+v", byID)
	}

	byEmail, err := repo.ByEmail(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("ByEmail: %v", err)
	}
	if byEmail.ID != user.ID {
		t.Fatalf("ByEmail returned wrong user: %+v", byEmail)
	}
}

func TestUserRepository_NotFound(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.ByID(ctx, "missing")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("ByID(missing) = %v, want ErrUserNotFound", err)
	}
	_, err = repo.ByEmail(ctx, "nobody@example.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("ByEmail(missing) = %v, want ErrUserNotFound", err)
	}
	err = repo.Delete(ctx, "missing")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("Delete(missing) = %v, want ErrUserNotFound", err)
	}
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	err := repo.Create(ctx, newUser("dup@example.com"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	err = repo.Create(ctx, newUser("dup@example.com"))
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("duplicate Create = %v, want ErrDuplicateEmail", err)
	}
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := newUser("rotate@example.com")
	err := repo.Create(ctx, user)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	err = repo.UpdatePassword(ctx, user.ID, "$2a$10$newnewnewnewnewnewnewnew")
	if err != nil {
		t.Fatalf("UpdatePassword: %v", err)
	}

	got, err := repo.ByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if got.PasswordHash != "$2a$10$newnewnewnewnewnewnewnew" {
		t.Fatalf("password hash not updated: %q", got.PasswordHash)
	}
	// Other fields untouched.
	if got.Email != "rotate@example.com" || got.FirstName != "Ada" {
		t.Fatalf("unexpected field change: %+v", got)
	}

	err = repo.UpdatePassword(ctx, "missing", "x")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("UpdatePassword(missing) = %v, want ErrUserNotFound", err)
	}
}

func TestUserRepository_UpdateAndAll(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := newUser("edit@example.com")
	err := repo.Create(ctx, user)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	user.FirstName = "Grace"
	user.Age = 45
	err = repo.Update(ctx, user)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.ByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if got.FirstName != "Grace" || got.Age != 45 {
		t.Fatalf("update not applied: %+v", got)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("All returned %d users, want 1", len(all))
	}
}
