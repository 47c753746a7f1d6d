package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joinus/backend/internal/identity"
	"github.com/joinus/backend/internal/model"
	"github.com/joinus/backend/internal/repository"
	"github.com/joinus/backend/internal/validation"
)

var (
	ErrEmailAlreadyExists = errors.New("email already registered")
)

type RegisterInput struct {
	Email     string
	FirstName string
	LastName  string
	Age       int
	Password  string
}

type UserService struct {
	userRepository repository.UserRepository
	identity       identity.Provider
}

func NewUserService(userRepository repository.UserRepository, identityProvider identity.Provider) *UserService {
	return &UserService{
		userRepository: userRepository,
		identity:       identityProvider,
	}
}

// Register creates a directory record and mirrors the account to the
// identity provider. The candidate password goes through the same policy
// validator as password reset; there is no second rule set.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))

	err := validation.ValidateEmail(email)
	if err != nil {
		return nil, err
	}
	err = validation.ValidateName(in.FirstName)
	if err != nil {
		return nil, fmt.Errorf("first name: %w", err)
	}
	err = validation.ValidateName(in.LastName)
	if err != nil {
		return nil, fmt.Errorf("last name: %w", err)
	}
	err = validation.ValidateAge(in.Age)
	if err != nil {
		return nil, err
	}
	err = validation.ValidatePassword(in.Password)
	if err != nil {
		return nil, err
	}

	_, err = s.userRepository.ByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailAlreadyExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	passwordHash, err := HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	uid, err := s.identity.CreateAccount(ctx, email, in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to provision identity account: %w", err)
	}

	user := &model.User{
		ID:           uuid.New().String(),
		Email:        email,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Age:          in.Age,
		PasswordHash: passwordHash,
		IdentityUID:  uid,
		CreatedAt:    time.Now(),
	}

	err = s.userRepository.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("user registered", "user_id", user.ID, "email", user.Email)
	return user, nil
}

func (s *UserService) All(ctx context.Context) ([]*model.User, error) {
	return s.userRepository.All(ctx)
}

func (s *UserService) ByID(ctx context.Context, id string) (*model.User, error) {
	return s.userRepository.ByID(ctx, id)
}

type UpdateInput struct {
	FirstName string
	LastName  string
	Age       int
}

func (s *UserService) Update(ctx context.Context, id string, in UpdateInput) (*model.User, error) {
	err := validation.ValidateName(in.FirstName)
	if err != nil {
		return nil, fmt.Errorf("first name: %w", err)
	}
	err = validation.ValidateName(in.LastName)
	if err != nil {
		return nil, fmt.Errorf("last name: %w", err)
	}
	err = validation.ValidateAge(in.Age)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepository.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.FirstName = strings.TrimSpace(in.FirstName)
	user.LastName = strings.TrimSpace(in.LastName)
	user.Age = in.Age

	err = s.userRepository.Update(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// Delete removes the directory record and the mirrored identity account.
// Directory removal is authoritative; a failed mirror delete is logged,
// not surfaced.
func (s *UserService) Delete(ctx context.Context, id string) error {
	user, err := s.userRepository.ByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.userRepository.Delete(ctx, id)
	if err != nil {
		return err
	}

	if user.IdentityUID != "" {
		err = s.identity.DeleteAccount(ctx, user.IdentityUID)
		if err != nil {
			slog.Warn("failed to delete identity account", "error", err, "user_id", id)
		}
	}

	slog.Info("user deleted", "user_id", id)
	return nil
}
