package model

import "time"

// User represents a user in the database.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RegisterRequest wraps the registration fields under a "user" key.
type RegisterRequest struct {
	User *RegisterParams `json:"user"`
}

// RegisterParams are the accepted registration fields. A nil
// PasswordConfirmation skips the confirmation check.
type RegisterParams struct {
	Email                string  `json:"email" validate:"required,email"`
	Password             string  `json:"password" validate:"required"`
	PasswordConfirmation *string `json:"password_confirmation"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// UserResponse represents user data safe for API responses (no sensitive fields).
type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}
