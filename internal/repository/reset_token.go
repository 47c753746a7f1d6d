package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/joinus/backend/internal/model"
)

var (
	ErrTokenNotFound = errors.New("reset token not found")

	// ErrTokenExists means a record with the same hash is already stored.
	// The caller's revocation step should make this impossible; hitting it
	// is a logic error, never a silent merge.
	ErrTokenExists = errors.New("reset token already exists")

	// ErrStoreUnavailable marks infrastructure failures of the token store.
	// Absence is always ErrTokenNotFound.
	ErrStoreUnavailable = errors.New("reset token store unavailable")
)

// ResetTokenRepository persists password-reset tokens keyed by their hash.
type ResetTokenRepository interface {
	Create(ctx context.Context, token *model.ResetToken) error
	ByHash(ctx context.Context, tokenHash string) (*model.ResetToken, error)
	// Delete is idempotent: deleting an absent hash is not an error.
	Delete(ctx context.Context, tokenHash string) error
	ByEmail(ctx context.Context, email string) ([]*model.ResetToken, error)
	// DeleteAllByEmail removes every token issued for the email, not just
	// the first match. Used by the revocation step before issuing.
	DeleteAllByEmail(ctx context.Context, email string) error
}

type resetTokenRepository struct {
	db *sqlx.DB
}

func NewResetTokenRepository(db *sqlx.DB) ResetTokenRepository {
	return &resetTokenRepository{db: db}
}

func (r *resetTokenRepository) Create(ctx context.Context, token *model.ResetToken) error {
	query := `
		INSERT INTO password_reset_tokens (token_hash, user_id, email, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		token.TokenHash,
		token.UserID,
		token.Email,
		token.CreatedAt,
		token.ExpiresAt,
	)
	if err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "UNIQUE constraint failed") || strings.Contains(errStr, "duplicate key value") {
			return ErrTokenExists
		}
		return storeErr(err)
	}
	return nil
}

func (r *resetTokenRepository) ByHash(ctx context.Context, tokenHash string) (*model.ResetToken, error) {
	token := &model.ResetToken{}
	query := `SELECT * FROM password_reset_tokens WHERE token_hash = $1`

	err := r.db.GetContext(ctx, token, query, tokenHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTokenNotFound
	}
	if err != nil {
		return nil, storeErr(err)
	}

	return token, nil
}

func (r *resetTokenRepository) Delete(ctx context.Context, tokenHash string) error {
	query := `DELETE FROM password_reset_tokens WHERE token_hash = $1`

	_, err := r.db.ExecContext(ctx, query, tokenHash)
	if err != nil {
		return storeErr(err)
	}
	return nil
}

func (r *resetTokenRepository) ByEmail(ctx context.Context, email string) ([]*model.ResetToken, error) {
	tokens := []*model.ResetToken{}
	query := `SELECT * FROM password_reset_tokens WHERE email = $1`

	err := r.db.SelectContext(ctx, &tokens, query, email)
	if err != nil {
		return nil, storeErr(err)
	}

	return tokens, nil
}

func (r *resetTokenRepository) DeleteAllByEmail(ctx context.Context, email string) error {
	query := `DELETE FROM password_reset_tokens WHERE email = $1`

	_, err := r.db.ExecContext(ctx, query, email)
	if err != nil {
		return storeErr(err)
	}
	return nil
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
