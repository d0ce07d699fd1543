// Package service provides business logic for authentication and task
// management, delegating persistence to repository interfaces.
package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/laithkh03/task/internal/models"
)

// Sentinel errors returned by the auth service.
var (
	// ErrValidation indicates the submitted credentials failed input
	// validation (missing, too short, or username already registered).
	ErrValidation = errors.New("validation failed")
	// ErrInvalidCredentials indicates the username is unknown or the
	// password does not match the stored hash.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const (
	minUsernameLen = 3
	minPasswordLen = 6
)

// UserRepository defines the persistence operations required by the
// authentication service.
type UserRepository interface {
	// UsernameExists returns true if a user with the given username exists.
	UsernameExists(ctx context.Context, username string) (bool, error)
	// Create inserts a new user and returns the generated id.
	Create(ctx context.Context, username, passwordHash string) (int64, error)
	// GetByUsername fetches a user by username.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// TokenIssuer produces signed bearer tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID int64, username string) (string, error)
}

// AuthService implements registration and login.
type AuthService struct {
	repo   UserRepository
	tokens TokenIssuer
}

// NewAuthService constructs an AuthService using the provided repository
// and token issuer.
func NewAuthService(repo UserRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Register validates the credentials, hashes the password with bcrypt,
// and persists the new user. Validation failures are reported as
// ErrValidation; a duplicate insert that slips past the pre-check is
// surfaced as the repository's error.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	if len(username) < minUsernameLen {
		return fmt.Errorf("%w: username must be at least %d characters", ErrValidation, minUsernameLen)
	}
	if len(password) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLen)
	}

	exists, err := s.repo.UsernameExists(ctx, username)
	if err != nil {
		return fmt.Errorf("check username: %w", err)
	}
	if exists {
		return fmt.Errorf("%w: username already taken", ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if _, err := s.repo.Create(ctx, username, string(hash)); err != nil {
		return err
	}
	return nil
}

// Login looks up the user and verifies the submitted password against
// the stored bcrypt hash before issuing a token. An unknown username or
// a password mismatch both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID, user.Username)
}
