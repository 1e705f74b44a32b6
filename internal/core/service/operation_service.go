package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/nevseti/fincloud-system/internal/core/auth"
	"github.com/nevseti/fincloud-system/internal/core/domain"
	"github.com/nevseti/fincloud-system/internal/core/ledger"
	"github.com/nevseti/fincloud-system/internal/core/ports"
)

// OperationService implements ledger use cases. Policy is evaluated once
// per call through the shared decision table; the resulting branch filter
// bounds every repository query.
type OperationService struct {
	repo   ports.OperationRepository
	logger zerolog.Logger
}

func NewOperationService(repo ports.OperationRepository, logger zerolog.Logger) *OperationService {
	return &OperationService{repo: repo, logger: logger}
}

// Create records a new ledger entry. Managers are denied; accountants may
// only write to their own branch.
func (s *OperationService) Create(ctx context.Context, caller auth.Claims, input ports.CreateOperationInput) (*domain.Operation, error) {
	decision := auth.Evaluate(caller, auth.ActionCreateOperation, input.BranchID)
	if !decision.Allowed {
		return nil, domain.ErrForbidden
	}

	if !input.Kind.Valid() || input.Amount < 0 || input.BranchID <= 0 {
		return nil, domain.ErrInvalidInput
	}

	created, err := s.repo.Create(ctx, &domain.Operation{
		Kind:        input.Kind,
		Amount:      input.Amount,
		Description: input.Description,
		UserID:      caller.UserID,
		BranchID:    input.BranchID,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create operation")
		return nil, err
	}

	s.logger.Info().
		Int64("operation_id", created.ID).
		Str("kind", string(created.Kind)).
		Int("branch_id", created.BranchID).
		Int64("user_id", caller.UserID).
		Msg("operation recorded")

	return created, nil
}

// List returns operations in the caller's scope, newest first. An
// accountant's explicit request for a foreign branch is denied outright.
func (s *OperationService) List(ctx context.Context, caller auth.Claims, requestedBranch int) ([]*domain.Operation, error) {
	decision := auth.Evaluate(caller, auth.ActionReadOperations, requestedBranch)
	if !decision.Allowed {
		return nil, domain.ErrForbidden
	}
	return s.repo.List(ctx, decision.BranchFilter)
}

// Balance aggregates income, expense and balance over the caller's scope.
func (s *OperationService) Balance(ctx context.Context, caller auth.Claims, requestedBranch int) (*ports.BalanceResult, error) {
	decision := auth.Evaluate(caller, auth.ActionReadBalance, requestedBranch)
	if !decision.Allowed {
		return nil, domain.ErrForbidden
	}

	operations, err := s.repo.List(ctx, decision.BranchFilter)
	if err != nil {
		return nil, err
	}

	// The repository already applied the filter; aggregate without one.
	summary := ledger.Aggregate(operations, domain.BranchAll)
	return &ports.BalanceResult{
		TotalBalance: summary.TotalBalance,
		TotalIncome:  summary.TotalIncome,
		TotalExpense: summary.TotalExpense,
		BranchID:     decision.BranchFilter,
	}, nil
}
