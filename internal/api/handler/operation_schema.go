package handler

import "time"

type createOperationRequest struct {
	Kind        string  `json:"type"        validate:"required,oneof=income expense"`
	Amount      float64 `json:"amount"      validate:"gte=0"`
	Description string  `json:"description" validate:"required"`
	BranchID    int     `json:"branch_id"   validate:"required,gt=0"`
}

type operationResponse struct {
	ID          int64     `json:"id"`
	Kind        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	UserID      int64     `json:"user_id"`
	BranchID    int       `json:"branch_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type balanceResponse struct {
	TotalBalance float64 `json:"total_balance"`
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	BranchID     int     `json:"branch_id"`
}
