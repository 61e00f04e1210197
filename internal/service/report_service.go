package service

import (
	"time"

	"github.com/K-Harikrishnan-7/Personal-Expense-Tracker/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ReportService computes spending aggregates and budget evaluations. It is a
// pure read side: every report is recomputed from current store state, holds
// no mutable state of its own, and never writes.
type ReportService struct {
	expenseRepo  domain.ExpenseRepository
	budgetRepo   domain.BudgetRepository
	categoryRepo domain.CategoryRepository
}

// NewReportService creates a new ReportService
func NewReportService(expenseRepo domain.ExpenseRepository, budgetRepo domain.BudgetRepository, categoryRepo domain.CategoryRepository) *ReportService {
	return &ReportService{
		expenseRepo:  expenseRepo,
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// CategorySpendingReport returns summed spending per category name for the
// owner. Categories with no expenses are absent; row order is unspecified.
func (s *ReportService) CategorySpendingReport(ownerID uuid.UUID) ([]*domain.CategorySpending, error) {
	return s.expenseRepo.TotalsByCategory(ownerID)
}

// MonthlySpendingReport returns summed spending per "YYYY-MM" month for the
// owner, ascending by month. Each label appears at most once.
func (s *ReportService) MonthlySpendingReport(ownerID uuid.UUID) ([]*domain.MonthlySpending, error) {
	return s.expenseRepo.TotalsByMonth(ownerID)
}

// BudgetStatusReport evaluates every budget of the owner against current
// spending, in store retrieval order. Budgets with an inverted date range or
// an unresolvable category are logged and excluded so one bad record cannot
// take down the whole report.
func (s *ReportService) BudgetStatusReport(ownerID uuid.UUID) ([]*domain.BudgetStatus, error) {
	budgets, err := s.budgetRepo.GetAllByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	statuses := make([]*domain.BudgetStatus, 0, len(budgets))
	for _, budget := range budgets {
		// The store validates ranges at write time; re-check here so a bad
		// row only drops itself from the report.
		if budget.StartDate.After(budget.EndDate) {
			log.Error().
				Str("owner_id", ownerID.String()).
				Int64("budget_id", budget.ID).
				Msg("Skipping budget with inverted date range")
			continue
		}

		scope := budget.Scope()
		categoryName := domain.OverallScopeLabel
		if scope.Kind == domain.ScopeCategory {
			category, err := s.categoryRepo.GetByID(ownerID, scope.CategoryID)
			if err != nil {
				// Missing here means the category was deleted or belongs to
				// another owner. Either way the reference is broken; exclude
				// the budget and keep the rest of the report intact.
				log.Error().Err(err).
					Str("owner_id", ownerID.String()).
					Int64("budget_id", budget.ID).
					Int64("category_id", scope.CategoryID).
					Msg("Skipping budget with unresolvable category")
				continue
			}
			categoryName = category.Name
		}

		currentSpending, err := s.sumInScope(ownerID, scope, budget.StartDate, budget.EndDate)
		if err != nil {
			return nil, err
		}

		status := &domain.BudgetStatus{
			BudgetID:        budget.ID,
			BudgetAmount:    budget.Amount,
			StartDate:       budget.StartDate,
			EndDate:         budget.EndDate,
			CategoryID:      budget.CategoryID,
			CategoryName:    categoryName,
			CurrentSpending: currentSpending,
		}
		status.Derive()
		statuses = append(statuses, status)
	}

	return statuses, nil
}

// sumInScope returns the owner's spending inside [startDate, endDate] for the
// given scope. The repository contract guarantees exact zero when nothing
// matches, so the evaluator never sees a null sum.
func (s *ReportService) sumInScope(ownerID uuid.UUID, scope domain.Scope, startDate, endDate time.Time) (decimal.Decimal, error) {
	switch scope.Kind {
	case domain.ScopeCategory:
		return s.expenseRepo.SumByCategoryAndDateRange(ownerID, scope.CategoryID, startDate, endDate)
	case domain.ScopeOverall:
		return s.expenseRepo.SumByDateRange(ownerID, startDate, endDate)
	}
	return decimal.Zero, nil
}
