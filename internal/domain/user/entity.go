// Package user covers staff accounts and JWT authentication.
package user

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleWaiter  Role = "waiter"
	RoleCashier Role = "cashier"
)

var AvailableRoles = []Role{RoleAdmin, RoleManager, RoleWaiter, RoleCashier}

func NewRole(raw string) (Role, error) {
	if slices.Contains(AvailableRoles, Role(raw)) {
		return Role(raw), nil
	}
	return "", errors.New("invalid role")
}

// User is a staff member. PasswordHash never leaves the service layer.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Roles        []Role    `json:"roles"`
	// TokenVersion invalidates outstanding JWTs when bumped on logout.
	TokenVersion int       `json:"-"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Email    string `json:"email" binding:"required,email,max=150"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Roles    []Role `json:"roles,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Roles    []Role  `json:"roles,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// AuthResponse is returned on register and login.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type Query struct {
	ActiveOnly bool
	PageSize   int
	PageNumber int
}
