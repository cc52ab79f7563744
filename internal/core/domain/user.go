package domain

import (
	"errors"
	"time"
)

var ErrDuplicateEmail = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrUserNotFound = errors.New("user not found")

// User models a registered account. The password hash never leaves the
// server; it is excluded from JSON serialization entirely.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Skills       string    `json:"skills"`
	CareerGoals  string    `json:"careerGoals"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
