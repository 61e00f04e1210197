package handler

import (
	"github.com/K-Harikrishnan-7/Personal-Expense-Tracker/internal/middleware"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter, authHandler *AuthHandler, categoryHandler *CategoryHandler, expenseHandler *ExpenseHandler, budgetHandler *BudgetHandler, reportHandler *ReportHandler) {
	// API version 1
	api := e.Group("/api/v1")
	api.Use(authMiddleware.Authenticate())
	api.Use(middleware.RateLimitMiddleware(rateLimiter))

	// Auth routes
	auth := api.Group("/auth")
	auth.POST("/callback", authHandler.Callback)
	auth.GET("/me", authHandler.Me)

	// Category routes
	categories := api.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetCategories)
	categories.GET("/:id", categoryHandler.GetCategory)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	// Expense routes
	expenses := api.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.GetExpenses)
	expenses.GET("/:id", expenseHandler.GetExpense)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	// Budget routes
	budgets := api.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.GET("/:id", budgetHandler.GetBudget)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	// Report routes
	reports := api.Group("/reports")
	reports.GET("/category-spending", reportHandler.GetCategorySpending)
	reports.GET("/monthly-spending", reportHandler.GetMonthlySpending)
	reports.GET("/budget-status", reportHandler.GetBudgetStatus)
}
