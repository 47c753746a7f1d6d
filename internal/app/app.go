package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/joinus/backend/internal/config"
	"github.com/joinus/backend/internal/db"
	"github.com/joinus/backend/internal/identity"
	"github.com/joinus/backend/internal/repository"
	"github.com/joinus/backend/internal/service"
)

type App struct {
	Cfg          *config.Config
	DB           *sqlx.DB
	AuthService  *service.AuthService
	UserService  *service.UserService
	EmailService *service.EmailService
	ResetService *service.PasswordResetService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	resetTokenRepository := repository.NewResetTokenRepository(database)

	// External identity provider
	identityProvider, err := identity.NewProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize identity provider: %v", err)
	}

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.EmailSenderName,
		cfg.FrontendURL,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	authService := service.NewAuthService(
		userRepository,
		cfg.JWTSecret,
		cfg.IsProduction(),
		cfg.JWTExpiry,
	)
	userService := service.NewUserService(userRepository, identityProvider)
	resetService := service.NewPasswordResetService(
		userRepository,
		resetTokenRepository,
		emailService,
		cfg.ResetTokenTTL,
	)

	return &App{
		Cfg:          cfg,
		DB:           database,
		AuthService:  authService,
		UserService:  userService,
		EmailService: emailService,
		ResetService: resetService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
