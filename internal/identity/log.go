package identity

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// logProvider is the development fallback: it provisions nothing and logs
// what would have been sent.
type logProvider struct{}

func NewLogProvider() Provider {
	return &logProvider{}
}

func (p *logProvider) CreateAccount(ctx context.Context, email, password string) (string, error) {
	uid := uuid.New().String()
	slog.Info("identity account created (log mode)", "email", email, "uid", uid)
	return uid, nil
}

func (p *logProvider) DeleteAccount(ctx context.Context, uid string) error {
	slog.Info("identity account deleted (log mode)", "uid", uid)
	return nil
}

func (p *logProvider) Name() string {
	return "log"
}
