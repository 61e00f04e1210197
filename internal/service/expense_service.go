package service

import (
	"strings"
	"time"

	"github.com/K-Harikrishnan-7/Personal-Expense-Tracker/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseService handles expense business logic
type ExpenseService struct {
	expenseRepo  domain.ExpenseRepository
	categoryRepo domain.CategoryRepository
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo domain.ExpenseRepository, categoryRepo domain.CategoryRepository) *ExpenseService {
	return &ExpenseService{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateExpenseInput holds the input for creating an expense
type CreateExpenseInput struct {
	CategoryID  int64
	Amount      decimal.Decimal
	Description *string
	Date        *time.Time
}

// CreateExpense creates a new expense with validation
func (s *ExpenseService) CreateExpense(ownerID uuid.UUID, input CreateExpenseInput) (*domain.Expense, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	description, err := normalizeDescription(input.Description)
	if err != nil {
		return nil, err
	}

	// Category must exist and belong to the owner
	if _, err := s.categoryRepo.GetByID(ownerID, input.CategoryID); err != nil {
		return nil, err
	}

	// Default to today when no date is given
	date := time.Now().UTC().Truncate(24 * time.Hour)
	if input.Date != nil {
		date = *input.Date
	}

	return s.expenseRepo.Create(&domain.Expense{
		OwnerID:     ownerID,
		CategoryID:  input.CategoryID,
		Amount:      input.Amount,
		Description: description,
		Date:        date,
	})
}

// GetExpenses retrieves the owner's expenses with optional filters and pagination
func (s *ExpenseService) GetExpenses(ownerID uuid.UUID, filters *domain.ExpenseFilters) (*domain.PaginatedExpenses, error) {
	if filters != nil && filters.StartDate != nil && filters.EndDate != nil &&
		filters.StartDate.After(*filters.EndDate) {
		return nil, domain.ErrInvalidDateRange
	}
	return s.expenseRepo.GetByOwner(ownerID, filters)
}

// GetExpenseByID retrieves one of the owner's expenses
func (s *ExpenseService) GetExpenseByID(ownerID uuid.UUID, id int64) (*domain.Expense, error) {
	return s.expenseRepo.GetByID(ownerID, id)
}

// UpdateExpenseInput holds the input for updating an expense
type UpdateExpenseInput struct {
	CategoryID  int64
	Amount      decimal.Decimal
	Description *string
	Date        time.Time
}

// UpdateExpense updates an existing expense with validation
func (s *ExpenseService) UpdateExpense(ownerID uuid.UUID, id int64, input UpdateExpenseInput) (*domain.Expense, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	description, err := normalizeDescription(input.Description)
	if err != nil {
		return nil, err
	}

	if _, err := s.categoryRepo.GetByID(ownerID, input.CategoryID); err != nil {
		return nil, err
	}

	return s.expenseRepo.Update(ownerID, id, &domain.UpdateExpenseData{
		CategoryID:  input.CategoryID,
		Amount:      input.Amount,
		Description: description,
		Date:        input.Date,
	})
}

// DeleteExpense removes one of the owner's expenses
func (s *ExpenseService) DeleteExpense(ownerID uuid.UUID, id int64) error {
	return s.expenseRepo.Delete(ownerID, id)
}

func normalizeDescription(description *string) (*string, error) {
	if description == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*description)
	if trimmed == "" {
		return nil, nil
	}
	if len(trimmed) > domain.MaxExpenseDescriptionLength {
		return nil, domain.ErrDescriptionTooLong
	}
	return &trimmed, nil
}
