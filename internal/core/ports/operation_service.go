package ports

import (
	"context"

	"github.com/nevseti/fincloud-system/internal/core/auth"
	"github.com/nevseti/fincloud-system/internal/core/domain"
)

// CreateOperationInput carries the fields needed to record a ledger entry.
type CreateOperationInput struct {
	Kind        domain.OperationKind
	Amount      float64
	Description string
	BranchID    int
}

// BalanceResult is the scoped income/expense/balance view.
// BranchID reports the branch the figures cover; domain.BranchAll means
// every branch in the caller's scope.
type BalanceResult struct {
	TotalBalance float64 `json:"total_balance"`
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	BranchID     int     `json:"branch_id"`
}

// OperationService defines ledger use cases. Every method evaluates the
// caller's claims against the access policy before touching storage.
type OperationService interface {
	Create(ctx context.Context, caller auth.Claims, input CreateOperationInput) (*domain.Operation, error)
	// List returns operations visible to the caller, newest first.
	// requestedBranch is an explicit branch filter; domain.BranchAll means
	// none was requested.
	List(ctx context.Context, caller auth.Claims, requestedBranch int) ([]*domain.Operation, error)
	Balance(ctx context.Context, caller auth.Claims, requestedBranch int) (*BalanceResult, error)
}
