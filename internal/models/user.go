package models

import "time"

// User represents a row in the PostgreSQL users table.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // never serialize
	CreatedAt    time.Time `json:"created_at"`
}

// UserProjection is the part of a user that may be returned to callers.
type UserProjection struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// RegisterRequest is the JSON body for POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"min=3,max=20"`
	Password string `json:"password" validate:"min=6,bcrypt_len"`
}
