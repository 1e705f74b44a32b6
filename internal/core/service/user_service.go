package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/nevseti/fincloud-system/internal/core/auth"
	"github.com/nevseti/fincloud-system/internal/core/domain"
	"github.com/nevseti/fincloud-system/internal/core/ports"
)

// UserService implements administrative identity management. Every entry
// point evaluates the caller against the access policy; only system admins
// reach the repository.
type UserService struct {
	repo   ports.UserRepository
	hasher auth.Hasher
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, hasher auth.Hasher, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, logger: logger}
}

func (s *UserService) authorize(caller auth.Claims) error {
	if d := auth.Evaluate(caller, auth.ActionManageUsers, domain.BranchAll); !d.Allowed {
		return domain.ErrForbidden
	}
	return nil
}

func (s *UserService) List(ctx context.Context, caller auth.Claims) ([]*domain.User, error) {
	if err := s.authorize(caller); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

func (s *UserService) Create(ctx context.Context, caller auth.Claims, input ports.RegisterInput) (*domain.User, error) {
	if err := s.authorize(caller); err != nil {
		return nil, err
	}

	if input.Email == "" || input.Password == "" || !domain.ValidRole(input.Role) || input.BranchID < 0 {
		return nil, domain.ErrInvalidInput
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
		BranchID:     input.BranchID,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", created.ID).Int64("admin_id", caller.UserID).Msg("user created by admin")
	return created, nil
}

// Update applies a partial update. An email change re-checks uniqueness;
// a password change re-hashes.
func (s *UserService) Update(ctx context.Context, caller auth.Claims, id int64, input ports.UpdateUserInput) (*domain.User, error) {
	if err := s.authorize(caller); err != nil {
		return nil, err
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil && *input.Email != user.Email {
		if *input.Email == "" {
			return nil, domain.ErrInvalidInput
		}
		if existing, err := s.repo.FindByEmail(ctx, *input.Email); err == nil && existing.ID != id {
			return nil, domain.ErrEmailTaken
		} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		user.Email = *input.Email
	}
	if input.Password != nil {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if input.Role != nil {
		if !domain.ValidRole(*input.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *input.Role
	}
	if input.BranchID != nil {
		if *input.BranchID < 0 {
			return nil, domain.ErrInvalidInput
		}
		user.BranchID = *input.BranchID
	}

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", id).Int64("admin_id", caller.UserID).Msg("user updated")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, caller auth.Claims, id int64) error {
	if err := s.authorize(caller); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("user_id", id).Int64("admin_id", caller.UserID).Msg("user deleted")
	return nil
}
