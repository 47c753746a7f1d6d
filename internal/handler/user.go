package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/joinus/backend/internal/repository"
	"github.com/joinus/backend/internal/service"
)

type userHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *userHandler {
	return &userHandler{userService: userService}
}

func (h *userHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email     string `json:"email"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Age       int    `json:"age"`
		Password  string `json:"password"`
	}
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.userService.Register(r.Context(), service.RegisterInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Age:       req.Age,
		Password:  req.Password,
	})
	switch {
	case err == nil:
		respondJSON(w, http.StatusCreated, map[string]any{
			"message": "registration successful",
			"user":    user,
		})
	case errors.Is(err, service.ErrEmailAlreadyExists):
		respondError(w, http.StatusConflict, "email already registered")
	case errors.Is(err, repository.ErrDirectoryUnavailable):
		slog.Error("registration failed", "error", err)
		respondError(w, http.StatusInternalServerError, "unable to process the request, please try again later")
	default:
		// Validation errors describe client input and are safe to return.
		respondError(w, http.StatusBadRequest, err.Error())
	}
}

func (h *userHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.All(r.Context())
	if err != nil {
		slog.Error("failed to list users", "error", err)
		respondError(w, http.StatusInternalServerError, "unable to process the request, please try again later")
		return
	}
	respondJSON(w, http.StatusOK, users)
}

func (h *userHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.ByID(r.Context(), r.PathValue("id"))
	switch {
	case err == nil:
		respondJSON(w, http.StatusOK, user)
	case errors.Is(err, repository.ErrUserNotFound):
		respondError(w, http.StatusNotFound, "user not found")
	default:
		slog.Error("failed to get user", "error", err)
		respondError(w, http.StatusInternalServerError, "unable to process the request, please try again later")
	}
}

func (h *userHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Age       int    `json:"age"`
	}
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.userService.Update(r.Context(), r.PathValue("id"), service.UpdateInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Age:       req.Age,
	})
	switch {
	case err == nil:
		respondJSON(w, http.StatusOK, map[string]any{
			"message": "user updated",
			"user":    user,
		})
	case errors.Is(err, repository.ErrUserNotFound):
		respondError(w, http.StatusNotFound, "user not found")
	case errors.Is(err, repository.ErrDirectoryUnavailable):
		slog.Error("failed to update user", "error", err)
		respondError(w, http.StatusInternalServerError, "unable to process the request, please try again later")
	default:
		respondError(w, http.StatusBadRequest, err.Error())
	}
}

func (h *userHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.userService.Delete(r.Context(), r.PathValue("id"))
	switch {
	case err == nil:
		respondMessage(w, http.StatusOK, "user deleted")
	case errors.Is(err, repository.ErrUserNotFound):
		respondError(w, http.StatusNotFound, "user not found")
	default:
		slog.Error("failed to delete user", "error", err)
		respondError(w, http.StatusInternalServerError, "unable to process the request, please try again later")
	}
}
