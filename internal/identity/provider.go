package identity

import "context"

// Provider mirrors account credentials to the external identity provider
// that owns primary authentication. The backend never reimplements login
// verification for that provider; it only keeps accounts in sync when users
// register or are deleted.
type Provider interface {
	// CreateAccount provisions the account and returns the provider's uid.
	CreateAccount(ctx context.Context, email, password string) (string, error)

	// DeleteAccount removes the provisioned account.
	DeleteAccount(ctx context.Context, uid string) error

	// Name returns the provider name (e.g., "http", "log")
	Name() string
}
