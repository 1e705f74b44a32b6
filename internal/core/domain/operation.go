package domain

import "time"

// OperationKind signs the monetary semantics of an operation. The stored
// amount is always non-negative; the kind decides whether it counts toward
// income or expense.
type OperationKind string

const (
	KindIncome  OperationKind = "income"
	KindExpense OperationKind = "expense"
)

// Valid reports whether the kind is one of the two ledger kinds.
func (k OperationKind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Operation is a single immutable ledger entry. Operations are created by
// an authorized identity and never updated or deleted afterwards.
type Operation struct {
	ID          int64         `json:"id"`
	Kind        OperationKind `json:"type"`
	Amount      float64       `json:"amount"`
	Description string        `json:"description"`
	UserID      int64         `json:"user_id"`
	BranchID    int           `json:"branch_id"`
	CreatedAt   time.Time     `json:"created_at"`
}
