package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/K-Harikrishnan-7/Personal-Expense-Tracker/internal/domain"
	"github.com/K-Harikrishnan-7/Personal-Expense-Tracker/internal/middleware"
	"github.com/K-Harikrishnan-7/Personal-Expense-Tracker/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// BudgetHandler handles budget HTTP requests
type BudgetHandler struct {
	budgetService *service.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgetService *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// BudgetRequest represents the create/update budget request body. A null
// categoryId produces an overall budget.
type BudgetRequest struct {
	Amount     decimal.Decimal `json:"amount"`
	StartDate  string          `json:"startDate"`
	EndDate    string          `json:"endDate"`
	CategoryID *int64          `json:"categoryId,omitempty"`
}

// BudgetResponse represents a budget in API responses
type BudgetResponse struct {
	ID         int64  `json:"id"`
	Amount     string `json:"amount"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	CategoryID *int64 `json:"categoryId,omitempty"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

// CreateBudget handles POST /api/v1/budgets
func (h *BudgetHandler) CreateBudget(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req BudgetRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	startDate, endDate, resp := parseBudgetDates(c, req.StartDate, req.EndDate)
	if resp != nil {
		return resp
	}

	budget, err := h.budgetService.CreateBudget(ownerID, service.CreateBudgetInput{
		Amount:     req.Amount,
		StartDate:  startDate,
		EndDate:    endDate,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		if resp := budgetValidationResponse(c, err); resp != nil {
			return resp
		}
		log.Error().Err(err).Str("owner_id", ownerID.String()).Msg("Failed to create budget")
		return NewInternalError(c, "Failed to create budget")
	}

	log.Info().Str("owner_id", ownerID.String()).Int64("budget_id", budget.ID).Str("amount", budget.Amount.StringFixed(2)).Msg("Budget created")

	return c.JSON(http.StatusCreated, toBudgetResponse(budget))
}

// GetBudgets handles GET /api/v1/budgets
func (h *BudgetHandler) GetBudgets(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	budgets, err := h.budgetService.GetBudgets(ownerID)
	if err != nil {
		log.Error().Err(err).Str("owner_id", ownerID.String()).Msg("Failed to get budgets")
		return NewInternalError(c, "Failed to get budgets")
	}

	response := make([]BudgetResponse, len(budgets))
	for i, budget := range budgets {
		response[i] = toBudgetResponse(budget)
	}

	return c.JSON(http.StatusOK, response)
}

// GetBudget handles GET /api/v1/budgets/:id
func (h *BudgetHandler) GetBudget(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return NewValidationError(c, "Invalid budget ID", nil)
	}

	budget, err := h.budgetService.GetBudgetByID(ownerID, id)
	if err != nil {
		if errors.Is(err, domain.ErrBudgetNotFound) {
			return NewNotFoundError(c, "Budget not found")
		}
		log.Error().Err(err).Str("owner_id", ownerID.String()).Int64("budget_id", id).Msg("Failed to get budget")
		return NewInternalError(c, "Failed to get budget")
	}

	return c.JSON(http.StatusOK, toBudgetResponse(budget))
}

// UpdateBudget handles PUT /api/v1/budgets/:id
func (h *BudgetHandler) UpdateBudget(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return NewValidationError(c, "Invalid budget ID", nil)
	}

	var req BudgetRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	startDate, endDate, resp := parseBudgetDates(c, req.StartDate, req.EndDate)
	if resp != nil {
		return resp
	}

	budget, err := h.budgetService.UpdateBudget(ownerID, id, service.UpdateBudgetInput{
		Amount:     req.Amount,
		StartDate:  startDate,
		EndDate:    endDate,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrBudgetNotFound) {
			return NewNotFoundError(c, "Budget not found")
		}
		if resp := budgetValidationResponse(c, err); resp != nil {
			return resp
		}
		log.Error().Err(err).Str("owner_id", ownerID.String()).Int64("budget_id", id).Msg("Failed to update budget")
		return NewInternalError(c, "Failed to update budget")
	}

	log.Info().Str("owner_id", ownerID.String()).Int64("budget_id", budget.ID).Msg("Budget updated")
	return c.JSON(http.StatusOK, toBudgetResponse(budget))
}

// DeleteBudget handles DELETE /api/v1/budgets/:id
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return NewValidationError(c, "Invalid budget ID", nil)
	}

	if err := h.budgetService.DeleteBudget(ownerID, id); err != nil {
		if errors.Is(err, domain.ErrBudgetNotFound) {
			return NewNotFoundError(c, "Budget not found")
		}
		log.Error().Err(err).Str("owner_id", ownerID.String()).Int64("budget_id", id).Msg("Failed to delete budget")
		return NewInternalError(c, "Failed to delete budget")
	}

	log.Info().Str("owner_id", ownerID.String()).Int64("budget_id", id).Msg("Budget deleted")
	return c.NoContent(http.StatusNoContent)
}

func parseBudgetDates(c echo.Context, start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "startDate", Message: "Date must be in YYYY-MM-DD format"},
		})
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "endDate", Message: "Date must be in YYYY-MM-DD format"},
		})
	}
	return startDate, endDate, nil
}

// budgetValidationResponse maps budget domain validation errors to problem
// responses, or returns nil for errors it does not handle
func budgetValidationResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "amount", Message: "Amount must be greater than zero"},
		})
	case errors.Is(err, domain.ErrInvalidDateRange):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "startDate", Message: "startDate must not be after endDate"},
		})
	case errors.Is(err, domain.ErrCategoryNotFound):
		return NewNotFoundError(c, "Category not found")
	}
	return nil
}

func toBudgetResponse(budget *domain.Budget) BudgetResponse {
	return BudgetResponse{
		ID:         budget.ID,
		Amount:     budget.Amount.StringFixed(2),
		StartDate:  budget.StartDate.Format(dateLayout),
		EndDate:    budget.EndDate.Format(dateLayout),
		CategoryID: budget.CategoryID,
		CreatedAt:  budget.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  budget.UpdatedAt.Format(time.RFC3339),
	}
}
