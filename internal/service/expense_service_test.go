package service

import (
	"strings"
	"testing"
	"time"

	"github.com/K-Harikrishnan-7/Personal-Expense-Tracker/internal/domain"
	"github.com/K-Harikrishnan-7/Personal-Expense-Tracker/internal/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func setupExpenseService() (*ExpenseService, *testutil.MockExpenseRepository, *testutil.MockCategoryRepository) {
	categoryRepo := testutil.NewMockCategoryRepository()
	expenseRepo := testutil.NewMockExpenseRepository(categoryRepo)

	service := NewExpenseService(expenseRepo, categoryRepo)
	return service, expenseRepo, categoryRepo
}

func TestCreateExpense_Success(t *testing.T) {
	service, _, categoryRepo := setupExpenseService()

	ownerID := uuid.New()
	categoryRepo.AddCategory(&domain.Category{ID: 1, OwnerID: ownerID, Name: "Food"})

	expenseDate := time.Date(2023, time.October, 5, 0, 0, 0, 0, time.UTC)
	description := "Lunch"

	expense, err := service.CreateExpense(ownerID, CreateExpenseInput{
		CategoryID:  1,
		Amount:      decimal.RequireFromString("10.00"),
		Description: &description,
		Date:        &expenseDate,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !expense.Amount.Equal(decimal.RequireFromString("10.00")) {
		t.Errorf("Expected amount 10.00, got %s", expense.Amount)
	}

	if !expense.Date.Equal(expenseDate) {
		t.Errorf("Expected date %v, got %v", expenseDate, expense.Date)
	}

	if expense.CategoryName != "Food" {
		t.Errorf("Expected category name 'Food', got %s", expense.CategoryName)
	}
}

func TestCreateExpense_DefaultsDateToToday(t *testing.T) {
	service, _, categoryRepo := setupExpenseService()

	ownerID := uuid.New()
	categoryRepo.AddCategory(&domain.Category{ID: 1, OwnerID: ownerID, Name: "Food"})

	expense, err := service.CreateExpense(ownerID, CreateExpenseInput{
		CategoryID: 1,
		Amount:     decimal.RequireFromString("10.00"),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if !expense.Date.Equal(today) {
		t.Errorf("Expected date to default to today %v, got %v", today, expense.Date)
	}
}

func TestCreateExpense_ZeroAmount(t *testing.T) {
	service, _, categoryRepo := setupExpenseService()

	ownerID := uuid.New()
	categoryRepo.AddCategory(&domain.Category{ID: 1, OwnerID: ownerID, Name: "Food"})

	_, err := service.CreateExpense(ownerID, CreateExpenseInput{
		CategoryID: 1,
		Amount:     decimal.Zero,
	})
	if err != domain.ErrInvalidAmount {
		t.Errorf("Expected ErrInvalidAmount, got %v", err)
	}
}

func TestCreateExpense_NegativeAmount(t *testing.T) {
	service, _, categoryRepo := setupExpenseService()

	ownerID := uuid.New()
	categoryRepo.AddCategory(&domain.Category{ID: 1, OwnerID: ownerID, Name: "Food"})

	_, err := service.CreateExpense(ownerID, CreateExpenseInput{
		CategoryID: 1,
		Amount:     decimal.RequireFromString("-5.00"),
	})
	if err != domain.ErrInvalidAmount {
		t.Errorf("Expected ErrInvalidAmount, got %v", err)
	}
}

func TestCreateExpense_CategoryNotFound(t *testing.T) {
	service, _, _ := setupExpenseService()

	_, err := service.CreateExpense(uuid.New(), CreateExpenseInput{
		CategoryID: 999,
		Amount:     decimal.RequireFromString("10.00"),
	})
	if err != domain.ErrCategoryNotFound {
		t.Errorf("Expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCreateExpense_CategoryOfAnotherOwner(t *testing.T) {
	service, _, categoryRepo := setupExpenseService()

	categoryRepo.AddCategory(&domain.Category{ID: 1, OwnerID: uuid.New(), Name: "Food"})

	_, err := service.CreateExpense(uuid.New(), CreateExpenseInput{
		CategoryID: 1,
		Amount:     decimal.RequireFromString("10.00"),
	})
	if err != domain.ErrCategoryNotFound {
		t.Errorf("Expected ErrCategoryNotFound for another owner's category, got %v", err)
	}
}

func TestCreateExpense_DescriptionTooLong(t *testing.T) {
	service, _, categoryRepo := setupExpenseService()

	ownerID := uuid.New()
	categoryRepo.AddCategory(&domain.Category{ID: 1, OwnerID: ownerID, Name: "Food"})

	longDescription := strings.Repeat("a", domain.MaxExpenseDescriptionLength+1)

	_, err := service.CreateExpense(ownerID, CreateExpenseInput{
		CategoryID:  1,
		Amount:      decimal.RequireFromString("10.00"),
		Description: &longDescription,
	})
	if err != domain.ErrDescriptionTooLong {
		t.Errorf("Expected ErrDescriptionTooLong, got %v", err)
	}
}

func TestCreateExpense_BlankDescriptionBecomesNil(t *testing.T) {
	service, _, categoryRepo := setupExpenseService()

	ownerID := uuid.New()
	categoryRepo.AddCategory(&domain.Category{ID: 1, OwnerID: ownerID, Name: "Food"})

	blank := "   "
	expense, err := service.CreateExpense(ownerID, CreateExpenseInput{
		CategoryID:  1,
		Amount:      decimal.RequireFromString("10.00"),
		Description: &blank,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if expense.Description != nil {
		t.Errorf("Expected nil description, got '%s'", *expense.Description)
	}
}

func TestGetExpenses_InvalidDateRange(t *testing.T) {
	service, _, _ := setupExpenseService()

	start := time.Date(2023, time.October, 31, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, time.October, 1, 0, 0, 0, 0, time.UTC)

	_, err := service.GetExpenses(uuid.New(), &domain.ExpenseFilters{
		StartDate: &start,
		EndDate:   &end,
		Page:      1,
		PageSize:  domain.DefaultPageSize,
	})
	if err != domain.ErrInvalidDateRange {
		t.Errorf("Expected ErrInvalidDateRange, got %v", err)
	}
}

func TestGetExpenses_FiltersByCategory(t *testing.T) {
	service, expenseRepo, categoryRepo := setupExpenseService()

	ownerID := uuid.New()
	categoryRepo.AddCategory(&domain.Category{ID: 1, OwnerID: ownerID, Name: "Food"})
	categoryRepo.AddCategory(&domain.Category{ID: 2, OwnerID: ownerID, Name: "Travel"})

	day := time.Date(2023, time.October, 5, 0, 0, 0, 0, time.UTC)
	expenseRepo.AddExpense(&domain.Expense{ID: 1, OwnerID: ownerID, CategoryID: 1, Amount: decimal.RequireFromString("10.00"), Date: day})
	expenseRepo.AddExpense(&domain.Expense{ID: 2, OwnerID: ownerID, CategoryID: 2, Amount: decimal.RequireFromString("5.00"), Date: day})

	categoryID := int64(1)
	page, err := service.GetExpenses(ownerID, &domain.ExpenseFilters{
		CategoryID: &categoryID,
		Page:       1,
		PageSize:   domain.DefaultPageSize,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(page.Data) != 1 {
		t.Fatalf("Expected 1 expense, got %d", len(page.Data))
	}

	if page.Data[0].CategoryID != 1 {
		t.Errorf("Expected category 1, got %d", page.Data[0].CategoryID)
	}
}

func TestGetExpenses_Pagination(t *testing.T) {
	service, expenseRepo, categoryRepo := setupExpenseService()

	ownerID := uuid.New()
	categoryRepo.AddCategory(&domain.Category{ID: 1, OwnerID: ownerID, Name: "Food"})

	for i := 0; i < 25; i++ {
		expenseRepo.AddExpense(&domain.Expense{
			ID:         int64(i + 1),
			OwnerID:    ownerID,
			CategoryID: 1,
			Amount:     decimal.RequireFromString("1.00"),
			Date:       time.Date(2023, time.October, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i%28),
		})
	}

	page, err := service.GetExpenses(ownerID, &domain.ExpenseFilters{Page: 2, PageSize: 10})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if page.TotalItems != 25 {
		t.Errorf("Expected 25 total items, got %d", page.TotalItems)
	}

	if page.TotalPages != 3 {
		t.Errorf("Expected 3 total pages, got %d", page.TotalPages)
	}

	if len(page.Data) != 10 {
		t.Errorf("Expected 10 items on page 2, got %d", len(page.Data))
	}
}

func TestUpdateExpense_Success(t *testing.T) {
	service, expenseRepo, categoryRepo := setupExpenseService()

	ownerID := uuid.New()
	categoryRepo.AddCategory(&domain.Category{ID: 1, OwnerID: ownerID, Name: "Food"})
	categoryRepo.AddCategory(&domain.Category{ID: 2, OwnerID: ownerID, Name: "Travel"})

	day := time.Date(2023, time.October, 5, 0, 0, 0, 0, time.UTC)
	expenseRepo.AddExpense(&domain.Expense{ID: 1, OwnerID: ownerID, CategoryID: 1, Amount: decimal.RequireFromString("10.00"), Date: day})

	updated, err := service.UpdateExpense(ownerID, 1, UpdateExpenseInput{
		CategoryID: 2,
		Amount:     decimal.RequireFromString("12.50"),
		Date:       day,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if updated.CategoryID != 2 {
		t.Errorf("Expected category 2, got %d", updated.CategoryID)
	}

	if !updated.Amount.Equal(decimal.RequireFromString("12.50")) {
		t.Errorf("Expected amount 12.50, got %s", updated.Amount)
	}
}

func TestUpdateExpense_NotFound(t *testing.T) {
	service, _, categoryRepo := setupExpenseService()

	ownerID := uuid.New()
	categoryRepo.AddCategory(&domain.Category{ID: 1, OwnerID: ownerID, Name: "Food"})

	_, err := service.UpdateExpense(ownerID, 999, UpdateExpenseInput{
		CategoryID: 1,
		Amount:     decimal.RequireFromString("10.00"),
		Date:       time.Now(),
	})
	if err != domain.ErrExpenseNotFound {
		t.Errorf("Expected ErrExpenseNotFound, got %v", err)
	}
}

func TestDeleteExpense_Success(t *testing.T) {
	service, expenseRepo, categoryRepo := setupExpenseService()

	ownerID := uuid.New()
	categoryRepo.AddCategory(&domain.Category{ID: 1, OwnerID: ownerID, Name: "Food"})
	expenseRepo.AddExpense(&domain.Expense{ID: 1, OwnerID: ownerID, CategoryID: 1, Amount: decimal.RequireFromString("10.00"), Date: time.Now()})

	if err := service.DeleteExpense(ownerID, 1); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := service.GetExpenseByID(ownerID, 1); err != domain.ErrExpenseNotFound {
		t.Errorf("Expected ErrExpenseNotFound after delete, got %v", err)
	}
}

func TestDeleteExpense_WrongOwner(t *testing.T) {
	service, expenseRepo, categoryRepo := setupExpenseService()

	ownerID := uuid.New()
	categoryRepo.AddCategory(&domain.Category{ID: 1, OwnerID: ownerID, Name: "Food"})
	expenseRepo.AddExpense(&domain.Expense{ID: 1, OwnerID: ownerID, CategoryID: 1, Amount: decimal.RequireFromString("10.00"), Date: time.Now()})

	if err := service.DeleteExpense(uuid.New(), 1); err != domain.ErrExpenseNotFound {
		t.Errorf("Expected ErrExpenseNotFound for another owner, got %v", err)
	}
}
