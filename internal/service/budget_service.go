package service

import (
	"time"

	"github.com/K-Harikrishnan-7/Personal-Expense-Tracker/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetService handles budget business logic. Tenancy of a budget's category
// reference is enforced here at write time; the report side assumes it and
// only re-checks defensively.
type BudgetService struct {
	budgetRepo   domain.BudgetRepository
	categoryRepo domain.CategoryRepository
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(budgetRepo domain.BudgetRepository, categoryRepo domain.CategoryRepository) *BudgetService {
	return &BudgetService{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateBudgetInput holds the input for creating a budget. A nil CategoryID
// creates an overall budget.
type CreateBudgetInput struct {
	Amount     decimal.Decimal
	StartDate  time.Time
	EndDate    time.Time
	CategoryID *int64
}

// CreateBudget creates a new budget with validation
func (s *BudgetService) CreateBudget(ownerID uuid.UUID, input CreateBudgetInput) (*domain.Budget, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}
	if input.StartDate.After(input.EndDate) {
		return nil, domain.ErrInvalidDateRange
	}
	if input.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ownerID, *input.CategoryID); err != nil {
			return nil, err
		}
	}

	return s.budgetRepo.Create(&domain.Budget{
		OwnerID:    ownerID,
		Amount:     input.Amount,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		CategoryID: input.CategoryID,
	})
}

// GetBudgets retrieves all budgets for the owner
func (s *BudgetService) GetBudgets(ownerID uuid.UUID) ([]*domain.Budget, error) {
	return s.budgetRepo.GetAllByOwner(ownerID)
}

// GetBudgetByID retrieves one of the owner's budgets
func (s *BudgetService) GetBudgetByID(ownerID uuid.UUID, id int64) (*domain.Budget, error) {
	return s.budgetRepo.GetByID(ownerID, id)
}

// UpdateBudgetInput holds the input for updating a budget. A nil CategoryID
// clears the category restriction, reverting the budget to overall scope.
type UpdateBudgetInput struct {
	Amount     decimal.Decimal
	StartDate  time.Time
	EndDate    time.Time
	CategoryID *int64
}

// UpdateBudget updates an existing budget with validation
func (s *BudgetService) UpdateBudget(ownerID uuid.UUID, id int64, input UpdateBudgetInput) (*domain.Budget, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}
	if input.StartDate.After(input.EndDate) {
		return nil, domain.ErrInvalidDateRange
	}
	if input.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ownerID, *input.CategoryID); err != nil {
			return nil, err
		}
	}

	return s.budgetRepo.Update(ownerID, id, &domain.UpdateBudgetData{
		Amount:     input.Amount,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		CategoryID: input.CategoryID,
	})
}

// DeleteBudget removes one of the owner's budgets
func (s *BudgetService) DeleteBudget(ownerID uuid.UUID, id int64) error {
	return s.budgetRepo.Delete(ownerID, id)
}
