package token

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

// Generate returns a new random reset token: 32 bytes from crypto/rand,
// hex encoded. 256 bits of entropy, 64-character string.
func Generate() (string, error) {
	bytes := make([]byte, 32)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// Hash returns the hex-encoded SHA-256 digest of a raw token. Tokens are
// stored and looked up by this digest, never in the clear.
//
// The digest is deliberately fast and unsalted: it is a lookup key for a
// value that already carries 256 bits of entropy, not a password hash.
func Hash(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
