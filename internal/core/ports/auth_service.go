package ports

import (
	"context"

	"github.com/nevseti/fincloud-system/internal/core/auth"
	"github.com/nevseti/fincloud-system/internal/core/domain"
)

// RegisterInput carries the fields needed to create an identity.
type RegisterInput struct {
	Email    string
	Password string
	Role     string
	BranchID int
}

// AuthService implements registration, login and profile lookup.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies credentials and mints a session token carrying the
	// user's identity claims. Unknown email and wrong password are not
	// distinguished to the caller.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Profile returns the caller's own identity record.
	Profile(ctx context.Context, caller auth.Claims) (*domain.User, error)
}

// UpdateUserInput carries a partial administrative update; nil fields are
// left unchanged.
type UpdateUserInput struct {
	Email    *string
	Password *string
	Role     *string
	BranchID *int
}

// UserService implements administrative identity management. Every method
// is gated on the caller's claims; only system admins pass.
type UserService interface {
	List(ctx context.Context, caller auth.Claims) ([]*domain.User, error)
	Create(ctx context.Context, caller auth.Claims, input RegisterInput) (*domain.User, error)
	Update(ctx context.Context, caller auth.Claims, id int64, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, caller auth.Claims, id int64) error
}
