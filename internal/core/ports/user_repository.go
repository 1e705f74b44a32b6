package ports

import (
	"context"

	"github.com/nevseti/fincloud-system/internal/core/domain"
)

// UserRepository defines persistence operations for identities. The email
// uniqueness constraint is owned by the store: Create and Update surface
// domain.ErrEmailTaken when it is violated, which callers must treat as a
// valid failure mode even after an optimistic pre-check.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
