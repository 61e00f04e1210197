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

// dateLayout is the wire format for calendar dates
const dateLayout = "2006-01-02"

// ExpenseHandler handles expense HTTP requests
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// CreateExpenseRequest represents the create expense request body
type CreateExpenseRequest struct {
	CategoryID  int64           `json:"categoryId"`
	Amount      decimal.Decimal `json:"amount"`
	Description *string         `json:"description,omitempty"`
	Date        *string         `json:"date,omitempty"`
}

// UpdateExpenseRequest represents the update expense request body
type UpdateExpenseRequest struct {
	CategoryID  int64           `json:"categoryId"`
	Amount      decimal.Decimal `json:"amount"`
	Description *string         `json:"description,omitempty"`
	Date        string          `json:"date"`
}

// ExpenseResponse represents an expense in API responses
type ExpenseResponse struct {
	ID           int64   `json:"id"`
	CategoryID   int64   `json:"categoryId"`
	CategoryName string  `json:"categoryName"`
	Amount       string  `json:"amount"`
	Description  *string `json:"description,omitempty"`
	Date         string  `json:"date"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// PaginatedExpensesResponse represents a page of expenses
type PaginatedExpensesResponse struct {
	Data       []ExpenseResponse `json:"data"`
	Page       int32             `json:"page"`
	PageSize   int32             `json:"pageSize"`
	TotalItems int64             `json:"totalItems"`
	TotalPages int32             `json:"totalPages"`
}

// CreateExpense handles POST /api/v1/expenses
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req CreateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input := service.CreateExpenseInput{
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		Description: req.Description,
	}
	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "date", Message: "Date must be in YYYY-MM-DD format"},
			})
		}
		input.Date = &date
	}

	expense, err := h.expenseService.CreateExpense(ownerID, input)
	if err != nil {
		if resp := expenseValidationResponse(c, err); resp != nil {
			return resp
		}
		log.Error().Err(err).Str("owner_id", ownerID.String()).Msg("Failed to create expense")
		return NewInternalError(c, "Failed to create expense")
	}

	log.Info().Str("owner_id", ownerID.String()).Int64("expense_id", expense.ID).Str("amount", expense.Amount.StringFixed(2)).Msg("Expense created")

	return c.JSON(http.StatusCreated, toExpenseResponse(expense))
}

// GetExpenses handles GET /api/v1/expenses
func (h *ExpenseHandler) GetExpenses(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	filters, err := parseExpenseFilters(c)
	if err != nil {
		return NewValidationError(c, err.Error(), nil)
	}

	page, err := h.expenseService.GetExpenses(ownerID, filters)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDateRange) {
			return NewValidationError(c, "startDate must not be after endDate", nil)
		}
		log.Error().Err(err).Str("owner_id", ownerID.String()).Msg("Failed to get expenses")
		return NewInternalError(c, "Failed to get expenses")
	}

	response := PaginatedExpensesResponse{
		Data:       make([]ExpenseResponse, len(page.Data)),
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
	}
	for i, expense := range page.Data {
		response.Data[i] = toExpenseResponse(expense)
	}

	return c.JSON(http.StatusOK, response)
}

// GetExpense handles GET /api/v1/expenses/:id
func (h *ExpenseHandler) GetExpense(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return NewValidationError(c, "Invalid expense ID", nil)
	}

	expense, err := h.expenseService.GetExpenseByID(ownerID, id)
	if err != nil {
		if errors.Is(err, domain.ErrExpenseNotFound) {
			return NewNotFoundError(c, "Expense not found")
		}
		log.Error().Err(err).Str("owner_id", ownerID.String()).Int64("expense_id", id).Msg("Failed to get expense")
		return NewInternalError(c, "Failed to get expense")
	}

	return c.JSON(http.StatusOK, toExpenseResponse(expense))
}

// UpdateExpense handles PUT /api/v1/expenses/:id
func (h *ExpenseHandler) UpdateExpense(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return NewValidationError(c, "Invalid expense ID", nil)
	}

	var req UpdateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "date", Message: "Date must be in YYYY-MM-DD format"},
		})
	}

	expense, err := h.expenseService.UpdateExpense(ownerID, id, service.UpdateExpenseInput{
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		if errors.Is(err, domain.ErrExpenseNotFound) {
			return NewNotFoundError(c, "Expense not found")
		}
		if resp := expenseValidationResponse(c, err); resp != nil {
			return resp
		}
		log.Error().Err(err).Str("owner_id", ownerID.String()).Int64("expense_id", id).Msg("Failed to update expense")
		return NewInternalError(c, "Failed to update expense")
	}

	log.Info().Str("owner_id", ownerID.String()).Int64("expense_id", expense.ID).Msg("Expense updated")
	return c.JSON(http.StatusOK, toExpenseResponse(expense))
}

// DeleteExpense handles DELETE /api/v1/expenses/:id
func (h *ExpenseHandler) DeleteExpense(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return NewValidationError(c, "Invalid expense ID", nil)
	}

	if err := h.expenseService.DeleteExpense(ownerID, id); err != nil {
		if errors.Is(err, domain.ErrExpenseNotFound) {
			return NewNotFoundError(c, "Expense not found")
		}
		log.Error().Err(err).Str("owner_id", ownerID.String()).Int64("expense_id", id).Msg("Failed to delete expense")
		return NewInternalError(c, "Failed to delete expense")
	}

	log.Info().Str("owner_id", ownerID.String()).Int64("expense_id", id).Msg("Expense deleted")
	return c.NoContent(http.StatusNoContent)
}

// expenseValidationResponse maps expense domain validation errors to problem
// responses, or returns nil for errors it does not handle
func expenseValidationResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "amount", Message: "Amount must be greater than zero"},
		})
	case errors.Is(err, domain.ErrDescriptionTooLong):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "description", Message: "Description must be 255 characters or less"},
		})
	case errors.Is(err, domain.ErrCategoryNotFound):
		return NewNotFoundError(c, "Category not found")
	}
	return nil
}

func parseExpenseFilters(c echo.Context) (*domain.ExpenseFilters, error) {
	filters := &domain.ExpenseFilters{}

	if v := c.QueryParam("categoryId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, errors.New("invalid categoryId filter")
		}
		filters.CategoryID = &id
	}
	if v := c.QueryParam("startDate"); v != "" {
		date, err := time.Parse(dateLayout, v)
		if err != nil {
			return nil, errors.New("invalid startDate filter")
		}
		filters.StartDate = &date
	}
	if v := c.QueryParam("endDate"); v != "" {
		date, err := time.Parse(dateLayout, v)
		if err != nil {
			return nil, errors.New("invalid endDate filter")
		}
		filters.EndDate = &date
	}
	if v := c.QueryParam("page"); v != "" {
		page, err := strconv.ParseInt(v, 10, 32)
		if err != nil || page < 1 {
			return nil, errors.New("invalid page")
		}
		filters.Page = int32(page)
	}
	if v := c.QueryParam("pageSize"); v != "" {
		pageSize, err := strconv.ParseInt(v, 10, 32)
		if err != nil || pageSize < 1 {
			return nil, errors.New("invalid pageSize")
		}
		filters.PageSize = int32(pageSize)
	}

	return filters, nil
}

func toExpenseResponse(expense *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:           expense.ID,
		CategoryID:   expense.CategoryID,
		CategoryName: expense.CategoryName,
		Amount:       expense.Amount.StringFixed(2),
		Description:  expense.Description,
		Date:         expense.Date.Format(dateLayout),
		CreatedAt:    expense.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    expense.UpdatedAt.Format(time.RFC3339),
	}
}
