package routes

import (
	"net/http"

	"github.com/joinus/backend/internal/app"
	"github.com/joinus/backend/internal/handler"
	"github.com/joinus/backend/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(app.AuthService)
	user := handler.NewUserHandler(app.UserService)
	reset := handler.NewResetHandler(app.ResetService)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Auth
	mux.HandleFunc("POST /api/auth/login", auth.Login)
	mux.HandleFunc("POST /api/auth/logout", auth.Logout)

	// Password reset. Intentionally without rate limiting or other
	// anti-abuse controls; see DESIGN.md.
	mux.HandleFunc("POST /api/auth/forgot-password", reset.ForgotPassword)
	mux.HandleFunc("POST /api/auth/reset-password", reset.ResetPassword)

	// User directory
	mux.HandleFunc("POST /api/users/register", user.Register)
	mux.HandleFunc("GET /api/users", middleware.RequireAuth(user.List))
	mux.HandleFunc("GET /api/users/{id}", middleware.RequireAuth(user.Get))
	mux.HandleFunc("PUT /api/users/{id}", middleware.RequireAuth(user.Update))
	mux.HandleFunc("DELETE /api/users/{id}", middleware.RequireAuth(user.Delete))

	return middleware.Chain(mux,
		middleware.RequestLogging,
		middleware.AuthMiddleware(app.AuthService, app.UserService),
	)
}
