package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nevseti/fincloud-system/internal/api/metrics"
	"github.com/nevseti/fincloud-system/internal/core/domain"
	"github.com/nevseti/fincloud-system/internal/core/ports"
)

// OperationHandler handles ledger entry creation, listing and balances.
type OperationHandler struct {
	service ports.OperationService
}

func NewOperationHandler(service ports.OperationService) *OperationHandler {
	return &OperationHandler{service: service}
}

func toOperationResponse(op *domain.Operation) operationResponse {
	return operationResponse{
		ID:          op.ID,
		Kind:        string(op.Kind),
		Amount:      op.Amount,
		Description: op.Description,
		UserID:      op.UserID,
		BranchID:    op.BranchID,
		CreatedAt:   op.CreatedAt,
	}
}

// Create handles POST /operations.
//
// @Summary      Record a monetary operation
// @Tags         operations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOperationRequest  true  "Operation details"
// @Success      201   {object}  operationResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /operations [post]
func (h *OperationHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createOperationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	op, err := h.service.Create(c.Request().Context(), claims, ports.CreateOperationInput{
		Kind:        domain.OperationKind(req.Kind),
		Amount:      req.Amount,
		Description: req.Description,
		BranchID:    req.BranchID,
	})
	if err != nil {
		return err
	}

	metrics.OperationsCreatedTotal.WithLabelValues(string(op.Kind)).Inc()
	return c.JSON(http.StatusCreated, toOperationResponse(op))
}

// List handles GET /operations?branch_id=.
//
// @Summary      List operations in the caller's scope
// @Tags         operations
// @Produce      json
// @Security     BearerAuth
// @Param        branch_id  query     int  false  "Explicit branch filter"
// @Success      200        {array}   operationResponse
// @Failure      403        {object}  errorResponse
// @Router       /operations [get]
func (h *OperationHandler) List(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	branch, err := queryBranch(c)
	if err != nil {
		return err
	}

	operations, err := h.service.List(c.Request().Context(), claims, branch)
	if err != nil {
		return err
	}

	resp := make([]operationResponse, 0, len(operations))
	for _, op := range operations {
		resp = append(resp, toOperationResponse(op))
	}
	return c.JSON(http.StatusOK, resp)
}

// Balance handles GET /balance?branch_id=.
//
// @Summary      Scoped income/expense/balance totals
// @Tags         operations
// @Produce      json
// @Security     BearerAuth
// @Param        branch_id  query     int  false  "Explicit branch filter"
// @Success      200        {object}  balanceResponse
// @Failure      403        {object}  errorResponse
// @Router       /balance [get]
func (h *OperationHandler) Balance(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	branch, err := queryBranch(c)
	if err != nil {
		return err
	}

	balance, err := h.service.Balance(c.Request().Context(), claims, branch)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, balanceResponse{
		TotalBalance: balance.TotalBalance,
		TotalIncome:  balance.TotalIncome,
		TotalExpense: balance.TotalExpense,
		BranchID:     balance.BranchID,
	})
}
