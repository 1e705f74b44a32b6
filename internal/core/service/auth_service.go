package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/nevseti/fincloud-system/internal/core/auth"
	"github.com/nevseti/fincloud-system/internal/core/domain"
	"github.com/nevseti/fincloud-system/internal/core/ports"
)

// AuthService implements registration, login and profile lookup.
type AuthService struct {
	repo   ports.UserRepository
	hasher auth.Hasher
	tokens *auth.TokenService
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher auth.Hasher, tokens *auth.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, logger: logger}
}

// Register creates a new identity. The email uniqueness pre-check is
// optimistic; a concurrent registration racing on the same email is
// resolved by the store's unique constraint, surfaced as ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" || !domain.ValidRole(input.Role) || input.BranchID < 0 {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
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

	s.logger.Info().Int64("user_id", created.ID).Str("role", created.Role).Int("branch_id", created.BranchID).Msg("user registered")
	return created, nil
}

// Login verifies credentials and mints a session token with the user's
// identity baked in, so other services can authorize without a user lookup.
// Unknown email and wrong password both return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(auth.NewClaims(user).AsMap(), 0)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("login succeeded")
	return token, user, nil
}

// Profile returns the caller's own identity record. Any authenticated
// identity may read its own profile.
func (s *AuthService) Profile(ctx context.Context, caller auth.Claims) (*domain.User, error) {
	if d := auth.Evaluate(caller, auth.ActionReadOwnProfile, domain.BranchAll); !d.Allowed {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByID(ctx, caller.UserID)
}
