package model

import (
	"time"
)

// ResetToken is a password-reset token at rest. The store holds only the
// one-way digest of the raw token; TokenHash is the primary key, so a
// compromised database never yields a usable token. Email is the normalized
// address the token was issued for and is used only to scope revocation.
type ResetToken struct {
	TokenHash string    `db:"token_hash"`
	UserID    string    `db:"user_id"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
	ExpiresAt time.Time `db:"expires_at"`
}

func (t *ResetToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}
