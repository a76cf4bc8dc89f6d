package model

import (
	"time"

	"github.com/google/uuid"
)

// User represents a staff account. Admin users manage students and other
// accounts; regular users only see their own dashboard.
type User struct {
	ID                  uuid.UUID  `json:"id"`
	Email               string     `json:"email"`
	PasswordHash        string     `json:"-"`
	FirstName           string     `json:"first_name"`
	LastName            string     `json:"last_name"`
	IsActive            bool       `json:"is_active"`
	IsAdmin             bool       `json:"is_admin"`
	IsLocked            bool       `json:"is_locked"`
	FailedLoginAttempts int        `json:"failed_login_attempts"`
	LastLogin           *time.Time `json:"last_login,omitempty"`
	LastLogout          *time.Time `json:"last_logout,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,max=128"`
}

// RegisterRequest is the payload for self-service registration.
// Password policy checks beyond length run in the service layer.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email,max=255"`
	Password  string `json:"password" binding:"required,max=128"`
	FirstName string `json:"first_name" binding:"omitempty,max=30"`
	LastName  string `json:"last_name" binding:"omitempty,max=30"`
}

// CreateUserRequest is the payload for admin-created accounts.
type CreateUserRequest struct {
	Email     string `json:"email" binding:"required,email,max=255"`
	Password  string `json:"password" binding:"required,max=128"`
	FirstName string `json:"first_name" binding:"omitempty,max=30"`
	LastName  string `json:"last_name" binding:"omitempty,max=30"`
	IsAdmin   bool   `json:"is_admin"`
}

// UpdateUserRequest is the payload for updating an existing account.
// Changing the password requires the current one.
type UpdateUserRequest struct {
	Email           string `json:"email" binding:"required,email,max=255"`
	FirstName       string `json:"first_name" binding:"omitempty,max=30"`
	LastName        string `json:"last_name" binding:"omitempty,max=30"`
	IsAdmin         bool   `json:"is_admin"`
	CurrentPassword string `json:"current_password" binding:"omitempty,max=128"`
	NewPassword     string `json:"new_password" binding:"omitempty,max=128"`
}

// ToggleLockRequest is the payload for locking or unlocking an account.
type ToggleLockRequest struct {
	IsLocked *bool `json:"is_locked" binding:"required"`
}
