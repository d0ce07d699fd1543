// Package http provides HTTP handlers for user authentication and
// task management.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/laithkh03/task/internal/service"
)

// AuthService defines the interface for authentication operations
// required by the HTTP handlers.
type AuthService interface {
	// Register validates and persists a new user.
	Register(ctx context.Context, username, password string) error
	// Login verifies credentials and returns a signed token.
	Login(ctx context.Context, username, password string) (string, error)
}

// AuthHandler handles HTTP requests for user registration and login.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
}

// credentialsRequest represents the JSON payload for registration and login.
type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles POST /auth/register.
// It expects a JSON body with "username" and "password". Validation
// failures answer 400, persistence failures (including a duplicate
// insert losing a registration race) answer 500, and success answers
// 201 with a status marker. No token is issued here; login is a
// separate step.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"status":  "error",
			"message": "User name and password validation error",
		})
		return
	}

	if err := h.AuthService.Register(r.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, service.ErrValidation) {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"status":  "error",
				"message": "User name and password validation error",
			})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"status":  "error",
			"message": "User registration failed",
		})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"status":  "success",
		"message": "User registered successfully",
	})
}

// Login handles POST /auth/login.
// Unknown usernames and password mismatches are indistinguishable to the
// caller: both answer 401. A token signing failure answers 500.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{
			"status":  "error",
			"message": "Invalid credentials",
		})
		return
	}

	tok, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{
				"status":  "error",
				"message": "Invalid credentials",
			})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"status":  "error",
			"message": "Token generation failed",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status": "success",
		"token":  tok,
	})
}
