package ports

import (
	"context"

	"github.com/nevseti/fincloud-system/internal/core/domain"
)

// OperationRepository defines persistence operations for the ledger.
// Operations are append-only; there is no update or delete.
type OperationRepository interface {
	Create(ctx context.Context, op *domain.Operation) (*domain.Operation, error)
	// List returns operations newest first. branchFilter narrows the result
	// to one branch; domain.BranchAll returns every branch.
	List(ctx context.Context, branchFilter int) ([]*domain.Operation, error)
}
