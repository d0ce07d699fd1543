// Package models defines the core data structures for users, tasks, and token claims.
package models

import "github.com/golang-jwt/jwt/v5"

// User represents an application user with credentials.
type User struct {
	// ID is the unique identifier for the user, generated on insert.
	ID int64 `json:"id"`
	// Username is the login name chosen by the user.
	Username string `json:"username"`
	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized in responses.
	PasswordHash string `json:"-"`
}

// Task represents a single to-do item owned by a user.
type Task struct {
	// ID is the unique identifier for the task, generated on insert.
	ID int64 `json:"id"`
	// Title is the short name of the task.
	Title string `json:"title"`
	// Description holds free-text details about the task.
	Description string `json:"description"`
	// Status is the task state. Defaults to "pending" at creation.
	Status string `json:"status"`
	// DueDate is a caller-supplied date string, stored and returned verbatim.
	DueDate string `json:"due_date"`
	// UserID is the owning user. Not exposed in task responses.
	UserID int64 `json:"-"`
}

// StatusPending is the default status assigned to newly created tasks.
const StatusPending = "pending"

// Claims defines the identity information carried in a signed token.
type Claims struct {
	// UserID is the id of the authenticated user.
	UserID int64 `json:"id"`
	// Username is the login name of the authenticated user.
	Username string `json:"username"`
	jwt.RegisteredClaims
}
