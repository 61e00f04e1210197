package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/K-Harikrishnan-7/Personal-Expense-Tracker/internal/domain"
	"github.com/K-Harikrishnan-7/Personal-Expense-Tracker/internal/service"
	"github.com/K-Harikrishnan-7/Personal-Expense-Tracker/internal/testutil"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

func setupBudgetHandler() (*BudgetHandler, *testutil.MockBudgetRepository, *testutil.MockCategoryRepository) {
	budgetRepo := testutil.NewMockBudgetRepository()
	categoryRepo := testutil.NewMockCategoryRepository()
	budgetService := service.NewBudgetService(budgetRepo, categoryRepo)
	return NewBudgetHandler(budgetService), budgetRepo, categoryRepo
}

func TestCreateBudgetHandler_OverallScope(t *testing.T) {
	e := echo.New()
	handler, _, _ := setupBudgetHandler()

	reqBody := `{"amount": "100.00", "startDate": "2023-10-01", "endDate": "2023-10-31"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/budgets", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	setupAuthContextWithOwner(c, "auth0|test", "test@example.com", "", "", uuid.New())

	err := handler.CreateBudget(c)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", rec.Code)
	}

	var response BudgetResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.Amount != "100.00" {
		t.Errorf("Expected amount '100.00', got %s", response.Amount)
	}

	if response.CategoryID != nil {
		t.Errorf("Expected nil category ID, got %d", *response.CategoryID)
	}
}

func TestCreateBudgetHandler_CategoryScope(t *testing.T) {
	e := echo.New()
	handler, _, categoryRepo := setupBudgetHandler()
	ownerID := uuid.New()

	categoryRepo.AddCategory(&domain.Category{ID: 1, OwnerID: ownerID, Name: "Food"})

	reqBody := `{"amount": "30.00", "startDate": "2023-10-01", "endDate": "2023-10-31", "categoryId": 1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/budgets", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	setupAuthContextWithOwner(c, "auth0|test", "test@example.com", "", "", ownerID)

	err := handler.CreateBudget(c)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var response BudgetResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.CategoryID == nil || *response.CategoryID != 1 {
		t.Errorf("Expected category ID 1, got %v", response.CategoryID)
	}
}

func TestCreateBudgetHandler_InvertedDateRange(t *testing.T) {
	e := echo.New()
	handler, _, _ := setupBudgetHandler()

	reqBody := `{"amount": "100.00", "startDate": "2023-10-31", "endDate": "2023-10-01"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/budgets", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	setupAuthContextWithOwner(c, "auth0|test", "test@example.com", "", "", uuid.New())

	err := handler.CreateBudget(c)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestCreateBudgetHandler_MissingDates(t *testing.T) {
	e := echo.New()
	handler, _, _ := setupBudgetHandler()

	reqBody := `{"amount": "100.00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/budgets", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	setupAuthContextWithOwner(c, "auth0|test", "test@example.com", "", "", uuid.New())

	err := handler.CreateBudget(c)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestCreateBudgetHandler_CategoryNotFound(t *testing.T) {
	e := echo.New()
	handler, _, _ := setupBudgetHandler()

	reqBody := `{"amount": "30.00", "startDate": "2023-10-01", "endDate": "2023-10-31", "categoryId": 999}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/budgets", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	setupAuthContextWithOwner(c, "auth0|test", "test@example.com", "", "", uuid.New())

	err := handler.CreateBudget(c)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestGetBudgetsHandler_Success(t *testing.T) {
	e := echo.New()
	handler, budgetRepo, _ := setupBudgetHandler()
	ownerID := uuid.New()

	budgetRepo.AddBudget(&domain.Budget{
		ID:        1,
		OwnerID:   ownerID,
		Amount:    decimal.RequireFromString("100.00"),
		StartDate: time.Date(2023, time.October, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2023, time.October, 31, 0, 0, 0, 0, time.UTC),
	})
	budgetRepo.AddBudget(&domain.Budget{
		ID:        2,
		OwnerID:   uuid.New(),
		Amount:    decimal.RequireFromString("50.00"),
		StartDate: time.Date(2023, time.October, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2023, time.October, 31, 0, 0, 0, 0, time.UTC),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/budgets", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	setupAuthContextWithOwner(c, "auth0|test", "test@example.com", "", "", ownerID)

	err := handler.GetBudgets(c)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var response []BudgetResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if len(response) != 1 {
		t.Errorf("Expected 1 budget, got %d", len(response))
	}
}

func TestUpdateBudgetHandler_ClearsCategoryScope(t *testing.T) {
	e := echo.New()
	handler, budgetRepo, categoryRepo := setupBudgetHandler()
	ownerID := uuid.New()

	categoryRepo.AddCategory(&domain.Category{ID: 1, OwnerID: ownerID, Name: "Food"})
	categoryID := int64(1)
	budgetRepo.AddBudget(&domain.Budget{
		ID:         1,
		OwnerID:    ownerID,
		Amount:     decimal.RequireFromString("30.00"),
		StartDate:  time.Date(2023, time.October, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2023, time.October, 31, 0, 0, 0, 0, time.UTC),
		CategoryID: &categoryID,
	})

	reqBody := `{"amount": "50.00", "startDate": "2023-10-01", "endDate": "2023-10-31"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/budgets/1", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	setupAuthContextWithOwner(c, "auth0|test", "test@example.com", "", "", ownerID)

	err := handler.UpdateBudget(c)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var response BudgetResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.CategoryID != nil {
		t.Errorf("Expected category scope cleared, got %d", *response.CategoryID)
	}
}

func TestDeleteBudgetHandler_NotFound(t *testing.T) {
	e := echo.New()
	handler, _, _ := setupBudgetHandler()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/budgets/999", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("999")

	setupAuthContextWithOwner(c, "auth0|test", "test@example.com", "", "", uuid.New())

	err := handler.DeleteBudget(c)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}
