package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OverallScopeLabel is the display label for budgets with no category scope.
const OverallScopeLabel = "Overall"

// CategorySpending is one row of the category spending report
type CategorySpending struct {
	CategoryName string          `json:"categoryName"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
}

// MonthlySpending is one row of the monthly spending report. Month is the
// expense date truncated to "YYYY-MM".
type MonthlySpending struct {
	Month       string          `json:"month"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// BudgetStatus combines a budget with its current spending. It is derived
// fresh on every evaluation and never persisted.
type BudgetStatus struct {
	BudgetID        int64           `json:"id"`
	BudgetAmount    decimal.Decimal `json:"budgetAmount"`
	StartDate       time.Time       `json:"startDate"`
	EndDate         time.Time       `json:"endDate"`
	CategoryID      *int64          `json:"categoryId,omitempty"`
	CategoryName    string          `json:"categoryName"`
	CurrentSpending decimal.Decimal `json:"currentSpending"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	IsExceeded      bool            `json:"isExceeded"`
	ExceededAmount  decimal.Decimal `json:"exceededAmount"`
}

// Derive fills the computed fields from BudgetAmount and CurrentSpending.
// RemainingAmount may go negative; a budget spent exactly to its limit is not
// exceeded.
func (s *BudgetStatus) Derive() {
	s.RemainingAmount = s.BudgetAmount.Sub(s.CurrentSpending)
	s.IsExceeded = s.CurrentSpending.GreaterThan(s.BudgetAmount)
	if s.IsExceeded {
		s.ExceededAmount = s.CurrentSpending.Sub(s.BudgetAmount)
	} else {
		s.ExceededAmount = decimal.Zero
	}
}
