// Package ledger computes income/expense totals over immutable monetary
// operations. Sums are accumulated as exact decimals and rounded to two
// places only at the point of output, so intermediate rounding error never
// compounds.
package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/nevseti/fincloud-system/internal/core/domain"
)

// BranchTotals holds the aggregated figures for a single branch.
type BranchTotals struct {
	BranchID int     `json:"branch_id"`
	Income   float64 `json:"income"`
	Expense  float64 `json:"expense"`
	Balance  float64 `json:"balance"`
}

// Summary is the result of aggregating a set of operations.
// Count is the number of operations inside the scope, including any whose
// kind is unknown; unknown kinds contribute nothing to the sums.
type Summary struct {
	TotalIncome  float64        `json:"total_income"`
	TotalExpense float64        `json:"total_expense"`
	TotalBalance float64        `json:"total_balance"`
	PerBranch    []BranchTotals `json:"branches"`
	Count        int            `json:"count"`
}

type accumulator struct {
	income  decimal.Decimal
	expense decimal.Decimal
}

// Aggregate folds operations into a Summary. When branchFilter is not
// domain.BranchAll, operations outside that branch are excluded before
// counting or summing. Empty input yields a zero-valued Summary with an
// empty per-branch list, never an error.
func Aggregate(operations []*domain.Operation, branchFilter int) Summary {
	total := accumulator{}
	perBranch := make(map[int]*accumulator)
	count := 0

	for _, op := range operations {
		if branchFilter != domain.BranchAll && op.BranchID != branchFilter {
			continue
		}
		count++

		b, ok := perBranch[op.BranchID]
		if !ok {
			b = &accumulator{}
			perBranch[op.BranchID] = b
		}

		amount := decimal.NewFromFloat(op.Amount)
		switch op.Kind {
		case domain.KindIncome:
			total.income = total.income.Add(amount)
			b.income = b.income.Add(amount)
		case domain.KindExpense:
			total.expense = total.expense.Add(amount)
			b.expense = b.expense.Add(amount)
		}
	}

	branches := make([]BranchTotals, 0, len(perBranch))
	for id, b := range perBranch {
		branches = append(branches, BranchTotals{
			BranchID: id,
			Income:   round(b.income),
			Expense:  round(b.expense),
			Balance:  round(b.income.Sub(b.expense)),
		})
	}
	sort.Slice(branches, func(i, j int) bool { return branches[i].BranchID < branches[j].BranchID })

	return Summary{
		TotalIncome:  round(total.income),
		TotalExpense: round(total.expense),
		TotalBalance: round(total.income.Sub(total.expense)),
		PerBranch:    branches,
		Count:        count,
	}
}

func round(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
