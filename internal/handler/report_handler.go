package handler

import (
	"net/http"

	"github.com/K-Harikrishnan-7/Personal-Expense-Tracker/internal/domain"
	"github.com/K-Harikrishnan-7/Personal-Expense-Tracker/internal/middleware"
	"github.com/K-Harikrishnan-7/Personal-Expense-Tracker/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ReportHandler handles reporting HTTP requests. It is a thin facade over the
// report service: it only shapes results, never computes.
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// CategorySpendingResponse is one row of the category spending report
type CategorySpendingResponse struct {
	CategoryName string `json:"categoryName"`
	TotalAmount  string `json:"totalAmount"`
}

// MonthlySpendingResponse is one row of the monthly spending report
type MonthlySpendingResponse struct {
	Month       string `json:"month"`
	TotalAmount string `json:"totalAmount"`
}

// BudgetStatusResponse is one row of the budget status report
type BudgetStatusResponse struct {
	ID              int64  `json:"id"`
	BudgetAmount    string `json:"budgetAmount"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	CategoryID      *int64 `json:"categoryId"`
	CategoryName    string `json:"categoryName"`
	CurrentSpending string `json:"currentSpending"`
	RemainingAmount string `json:"remainingAmount"`
	IsExceeded      bool   `json:"isExceeded"`
	ExceededAmount  string `json:"exceededAmount"`
}

// GetCategorySpending handles GET /api/v1/reports/category-spending
func (h *ReportHandler) GetCategorySpending(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	report, err := h.reportService.CategorySpendingReport(ownerID)
	if err != nil {
		log.Error().Err(err).Str("owner_id", ownerID.String()).Msg("Failed to build category spending report")
		return NewInternalError(c, "Failed to build report")
	}

	response := make([]CategorySpendingResponse, len(report))
	for i, row := range report {
		response[i] = CategorySpendingResponse{
			CategoryName: row.CategoryName,
			TotalAmount:  row.TotalAmount.StringFixed(2),
		}
	}

	return c.JSON(http.StatusOK, response)
}

// GetMonthlySpending handles GET /api/v1/reports/monthly-spending
func (h *ReportHandler) GetMonthlySpending(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	report, err := h.reportService.MonthlySpendingReport(ownerID)
	if err != nil {
		log.Error().Err(err).Str("owner_id", ownerID.String()).Msg("Failed to build monthly spending report")
		return NewInternalError(c, "Failed to build report")
	}

	response := make([]MonthlySpendingResponse, len(report))
	for i, row := range report {
		response[i] = MonthlySpendingResponse{
			Month:       row.Month,
			TotalAmount: row.TotalAmount.StringFixed(2),
		}
	}

	return c.JSON(http.StatusOK, response)
}

// GetBudgetStatus handles GET /api/v1/reports/budget-status
func (h *ReportHandler) GetBudgetStatus(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	report, err := h.reportService.BudgetStatusReport(ownerID)
	if err != nil {
		log.Error().Err(err).Str("owner_id", ownerID.String()).Msg("Failed to build budget status report")
		return NewInternalError(c, "Failed to build report")
	}

	response := make([]BudgetStatusResponse, len(report))
	for i, status := range report {
		response[i] = toBudgetStatusResponse(status)
	}

	return c.JSON(http.StatusOK, response)
}

func toBudgetStatusResponse(status *domain.BudgetStatus) BudgetStatusResponse {
	return BudgetStatusResponse{
		ID:              status.BudgetID,
		BudgetAmount:    status.BudgetAmount.StringFixed(2),
		StartDate:       status.StartDate.Format(dateLayout),
		EndDate:         status.EndDate.Format(dateLayout),
		CategoryID:      status.CategoryID,
		CategoryName:    status.CategoryName,
		CurrentSpending: status.CurrentSpending.StringFixed(2),
		RemainingAmount: status.RemainingAmount.StringFixed(2),
		IsExceeded:      status.IsExceeded,
		ExceededAmount:  status.ExceededAmount.StringFixed(2),
	}
}
