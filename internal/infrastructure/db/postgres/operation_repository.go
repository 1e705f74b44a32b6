package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nevseti/fincloud-system/internal/core/domain"
)

// OperationRepository implements ports.OperationRepository backed by
// PostgreSQL. The table is append-only.
type OperationRepository struct {
	pool *pgxpool.Pool
}

func NewOperationRepository(pool *pgxpool.Pool) *OperationRepository {
	return &OperationRepository{pool: pool}
}

func (r *OperationRepository) Create(ctx context.Context, op *domain.Operation) (*domain.Operation, error) {
	created := *op
	err := r.pool.QueryRow(ctx, `
		INSERT INTO operations (type, amount, description, user_id, branch_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, string(op.Kind), op.Amount, op.Description, op.UserID, op.BranchID).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert operation: %w", err)
	}
	return &created, nil
}

// List returns operations newest first, filtered to one branch when
// branchFilter is not domain.BranchAll.
func (r *OperationRepository) List(ctx context.Context, branchFilter int) ([]*domain.Operation, error) {
	query := `
		SELECT id, type, amount, description, user_id, branch_id, created_at
		FROM operations`
	args := []any{}
	if branchFilter != domain.BranchAll {
		query += ` WHERE branch_id = $1`
		args = append(args, branchFilter)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list operations: %w", err)
	}
	defer rows.Close()

	var operations []*domain.Operation
	for rows.Next() {
		var op domain.Operation
		var kind string
		if err := rows.Scan(&op.ID, &kind, &op.Amount, &op.Description, &op.UserID, &op.BranchID, &op.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan operation: %w", err)
		}
		op.Kind = domain.OperationKind(kind)
		operations = append(operations, &op)
	}
	return operations, rows.Err()
}
