package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/joinus/backend/internal/service"
	"github.com/joinus/backend/internal/validation"
)

type resetHandler struct {
	resetService *service.PasswordResetService
}

func NewResetHandler(resetService *service.PasswordResetService) *resetHandler {
	return &resetHandler{resetService: resetService}
}

// ForgotPassword accepts {"email": ...} and always answers with the same
// confirmation for any well-formed address. Whether the account exists must
// not be observable from the response.
func (h *resetHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	email := strings.TrimSpace(req.Email)
	err = validation.ValidateEmail(email)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid email address")
		return
	}

	err = h.resetService.RequestReset(r.Context(), email)
	if err != nil {
		// Store, directory, or delivery failure. The generic message leaks
		// nothing about whether a token was created.
		slog.Error("password reset request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "unable to process the request, please try again later")
		return
	}

	respondMessage(w, http.StatusOK, "If an account exists for that address, a password reset link has been sent.")
}

// ResetPassword accepts {"token": ..., "password": ...} and consumes the
// token. Policy violations are disclosed verbatim; invalid and expired
// tokens are a single indistinguishable client error.
func (h *resetHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Token) == "" {
		respondError(w, http.StatusBadRequest, "token is required")
		return
	}

	err = h.resetService.ResetPassword(r.Context(), req.Token, req.Password)
	switch {
	case err == nil:
		respondMessage(w, http.StatusOK, "password updated")
	case errors.Is(err, service.ErrInvalidOrExpiredToken):
		respondError(w, http.StatusBadRequest, "invalid or expired reset token")
	case validation.IsPolicyViolation(err):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("password reset failed", "error", err)
		respondError(w, http.StatusInternalServerError, "unable to process the request, please try again later")
	}
}
