package identity

import (
	"fmt"
	"log/slog"

	"github.com/joinus/backend/internal/config"
)

// NewProvider creates an identity provider based on configuration.
// An IDENTITY_URL selects the HTTP provider; without one, development gets
// the log provider and production refuses to start.
func NewProvider(cfg *config.Config) (Provider, error) {
	if cfg.IdentityURL != "" {
		slog.Info("initializing identity provider", "provider", "http", "url", cfg.IdentityURL)
		return NewHTTPProvider(cfg.IdentityURL), nil
	}

	if cfg.IsProduction() {
		return nil, fmt.Errorf("IDENTITY_URL is required in production")
	}

	slog.Info("initializing identity provider", "provider", "log")
	return NewLogProvider(), nil
}
