package repository

import (
	"errors"

	"github.com/lib/pq"
)

// Sentinel errors surfaced by the repositories.
var (
	// ErrUserNotFound indicates no user row matched the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken indicates an insert violated the username
	// uniqueness constraint.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrTaskNotFound indicates no task row matched the (id, user_id)
	// lookup. A task owned by another user is indistinguishable from a
	// nonexistent one.
	ErrTaskNotFound = errors.New("task not found")
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique constraint errors.
const uniqueViolation = "23505"

// isUniqueViolation reports whether err is a PostgreSQL unique
// constraint violation.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
