// Package token issues and verifies stateless HMAC-signed bearer tokens
// carrying user identity claims.
package token

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/laithkh03/task/internal/models"
)

// ErrInvalidToken is returned by Verify for any token that cannot be
// parsed, carries a bad signature, or holds no usable claims. Callers
// treat every failure mode uniformly as an authentication failure.
var ErrInvalidToken = errors.New("invalid token")

// Service signs and verifies tokens with a symmetric secret. The secret
// is injected at construction and read-only for the process lifetime.
type Service struct {
	secret []byte
}

// New returns a Service signing with the given secret.
func New(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// Issue produces an HMAC-SHA256 signed token encoding the user's id and
// username. Tokens carry no expiry: revocation and refresh are out of
// scope for this service.
func (s *Service) Issue(userID int64, username string) (string, error) {
	claims := models.Claims{
		UserID:   userID,
		Username: username,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify validates the signature and structure of the given token string
// and returns the embedded claims. Only HS256 is accepted. Any failure
// yields ErrInvalidToken.
func (s *Service) Verify(raw string) (*models.Claims, error) {
	claims := &models.Claims{}
	t, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !t.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
