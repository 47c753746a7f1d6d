package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/joinus/backend/internal/model"
	"github.com/joinus/backend/internal/repository"
)

func TestHashAndComparePassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("Abcdef12")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "Abcdef12" {
		t.Fatal("hash must differ from the password")
	}
	if err := ComparePassword("Abcdef12", hash); err != nil {
		t.Fatalf("ComparePassword: %v", err)
	}
	if err := ComparePassword("wrong", hash); err == nil {
		t.Fatal("wrong password must not verify")
	}
}

func TestGenerateAndVerifyJWT(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(nil, "test-secret", false, time.Hour)
	user := &model.User{ID: "user-1", Email: "user@example.com"}

	tok, err := svc.GenerateJWT(user)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := svc.VerifyJWT(tok)
	if err != nil {
		t.Fatalf("VerifyJWT: %v", err)
	}
	if claims["user_id"] != "user-1" {
		t.Fatalf("claims user_id = %v, want user-1", claims["user_id"])
	}

	// Wrong secret rejects.
	other := NewAuthService(nil, "other-secret", false, time.Hour)
	_, err = other.VerifyJWT(tok)
	if err == nil {
		t.Fatal("token verified with wrong secret")
	}

	// Expired token rejects.
	expired := NewAuthService(nil, "test-secret", false, -time.Minute)
	tok, err = expired.GenerateJWT(user)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	_, err = svc.VerifyJWT(tok)
	if err == nil {
		t.Fatal("expired token verified")
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("Abcdef12")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	users := newFakeUserRepo(&model.User{ID: "user-1", Email: "user@example.com", PasswordHash: hash})
	svc := NewAuthService(users, "test-secret", false, time.Hour)
	ctx := context.Background()

	user, err := svc.Login(ctx, "  User@Example.com ", "Abcdef12")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.ID != "user-1" {
		t.Fatalf("unexpected user: %+v", user)
	}

	_, err = svc.Login(ctx, "user@example.com", "wrongpass1")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: %v, want ErrInvalidCredentials", err)
	}

	// Unknown account and wrong password are the same error.
	_, err = svc.Login(ctx, "nobody@example.com", "Abcdef12")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: %v, want ErrInvalidCredentials", err)
	}

	// Infrastructure failure is not a credentials failure.
	users.lookupErr = repository.ErrDirectoryUnavailable
	_, err = svc.Login(ctx, "user@example.com", "Abcdef12")
	if errors.Is(err, ErrInvalidCredentials) {
		t.Fatal("infrastructure failure must not read as bad credentials")
	}
}
