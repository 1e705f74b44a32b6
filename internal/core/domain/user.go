package domain

import (
	"errors"
	"time"
)

// Roles, ascending privilege. Accountants are bound to a single branch,
// managers read every branch, system admins are unrestricted.
const (
	RoleAccountant  = "accountant"
	RoleManager     = "manager"
	RoleSystemAdmin = "system_admin"
)

// BranchAll is the branch id meaning "all branches".
const BranchAll = 0

var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrUnauthorized = errors.New("unauthorized")
var ErrForbidden = errors.New("access forbidden")
var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidInput = errors.New("invalid input")

// User models an identity able to authenticate against the system.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	BranchID     int       `json:"branch_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAccountant, RoleManager, RoleSystemAdmin:
		return true
	}
	return false
}
