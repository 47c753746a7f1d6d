package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joinus/backend/internal/model"
	"github.com/joinus/backend/internal/repository"
	"github.com/joinus/backend/internal/token"
	"github.com/joinus/backend/internal/validation"
)

var (
	// ErrInvalidOrExpiredToken covers both an unknown and an expired token.
	// Callers must not be able to tell the two apart, so token guessing
	// yields no feedback.
	ErrInvalidOrExpiredToken = errors.New("invalid or expired reset token")

	// ErrDeliveryFailed means the reset email never reached the provider.
	// The just-created token record has been rolled back.
	ErrDeliveryFailed = errors.New("failed to deliver reset email")
)

// ResetEmailSender delivers the outbound reset email. Implemented by
// EmailService; declared as an interface so tests can substitute a fake.
type ResetEmailSender interface {
	SendPasswordResetEmail(ctx context.Context, email, token string) error
}

// PasswordResetService owns the reset-token lifecycle: issue on request,
// revoke predecessors, consume exactly once, expire lazily.
//
// Two concurrent RequestReset calls for the same email can each pass the
// revocation step before either inserts, leaving two live tokens. Both stay
// independently valid and single-use, so this relaxation of the one-live-
// token invariant is accepted rather than closed with a transaction.
type PasswordResetService struct {
	userRepository  repository.UserRepository
	tokenRepository repository.ResetTokenRepository
	email           ResetEmailSender
	tokenTTL        time.Duration
}

func NewPasswordResetService(
	userRepository repository.UserRepository,
	tokenRepository repository.ResetTokenRepository,
	email ResetEmailSender,
	tokenTTL time.Duration,
) *PasswordResetService {
	return &PasswordResetService{
		userRepository:  userRepository,
		tokenRepository: tokenRepository,
		email:           email,
		tokenTTL:        tokenTTL,
	}
}

// RequestReset issues a reset token for the account behind email and mails
// the raw token as a link. Whether or not the account exists, the caller
// gets the same nil result; nothing about the outcome may reveal account
// existence.
func (s *PasswordResetService) RequestReset(ctx context.Context, email string) error {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.userRepository.ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same observable outcome as the found case: no token, no email.
			slog.Info("password reset requested for unknown email", "email", email)
			return nil
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	// Revoke every live token for this email before issuing a new one.
	err = s.tokenRepository.DeleteAllByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to revoke existing tokens: %w", err)
	}

	rawToken, err := token.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	now := time.Now()
	record := &model.ResetToken{
		TokenHash: token.Hash(rawToken),
		UserID:    user.ID,
		Email:     email,
		CreatedAt: now,
		ExpiresAt: now.Add(s.tokenTTL),
	}
	err = s.tokenRepository.Create(ctx, record)
	if err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}

	err = s.email.SendPasswordResetEmail(ctx, email, rawToken)
	if err != nil {
		// The link never reached the provider; the record must not stay
		// live. Roll it back before surfacing the failure.
		delErr := s.tokenRepository.Delete(ctx, record.TokenHash)
		if delErr != nil {
			slog.Warn("failed to roll back reset token after send failure", "error", delErr, "user_id", user.ID)
		}
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	slog.Info("password reset email sent", "user_id", user.ID)
	return nil
}

// ResetPassword consumes a reset token: it validates the presented raw
// token and the candidate password, rotates the credential in the user
// directory, and deletes the token record.
//
// The directory write strictly precedes token deletion. A crash in between
// leaves a token whose reuse repeats the same harmless update; deleting
// first would lose the user's one chance to apply the change.
func (s *PasswordResetService) ResetPassword(ctx context.Context, rawToken, newPassword string) error {
	record, err := s.tokenRepository.ByHash(ctx, token.Hash(rawToken))
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return ErrInvalidOrExpiredToken
		}
		return fmt.Errorf("failed to look up token: %w", err)
	}

	if record.IsExpired() {
		// Lazy cleanup: the first read of an expired record removes it.
		delErr := s.tokenRepository.Delete(ctx, record.TokenHash)
		if delErr != nil {
			slog.Warn("failed to delete expired reset token", "error", delErr)
		}
		return ErrInvalidOrExpiredToken
	}

	err = validation.ValidatePassword(newPassword)
	if err != nil {
		return err
	}

	passwordHash, err := HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	err = s.userRepository.UpdatePassword(ctx, record.UserID, passwordHash)
	if err != nil {
		// Token stays intact so the same link can be retried until expiry.
		return fmt.Errorf("failed to update password: %w", err)
	}

	err = s.tokenRepository.Delete(ctx, record.TokenHash)
	if err != nil {
		// The credential was rotated; reuse of the leftover token would
		// only repeat the same update.
		slog.Warn("failed to delete consumed reset token", "error", err, "user_id", record.UserID)
	}

	slog.Info("password reset completed", "user_id", record.UserID)
	return nil
}
