package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is a single ledger entry: a dated, categorized amount owned by one
// user. Date carries no time-of-day component (stored as a calendar date).
type Expense struct {
	ID           int64           `json:"id"`
	OwnerID      uuid.UUID       `json:"ownerId"`
	CategoryID   int64           `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	Amount       decimal.Decimal `json:"amount"`
	Description  *string         `json:"description,omitempty"`
	Date         time.Time       `json:"date"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ExpenseFilters holds optional filters for listing expenses
type ExpenseFilters struct {
	CategoryID *int64
	StartDate  *time.Time
	EndDate    *time.Time
	Page       int32
	PageSize   int32
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PaginatedExpenses is a page of expenses with pagination metadata
type PaginatedExpenses struct {
	Data       []*Expense `json:"data"`
	Page       int32      `json:"page"`
	PageSize   int32      `json:"pageSize"`
	TotalItems int64      `json:"totalItems"`
	TotalPages int32      `json:"totalPages"`
}

// UpdateExpenseData holds the fields applied by an expense update
type UpdateExpenseData struct {
	CategoryID  int64
	Amount      decimal.Decimal
	Description *string
	Date        time.Time
}

// ExpenseRepository defines the interface for expense persistence and the
// owner-scoped aggregate queries consumed by the reporting engine. The sum
// queries return exact zero (never an error) when no expense matches, and
// date ranges are inclusive on both ends.
type ExpenseRepository interface {
	Create(expense *Expense) (*Expense, error)
	GetByID(ownerID uuid.UUID, id int64) (*Expense, error)
	GetByOwner(ownerID uuid.UUID, filters *ExpenseFilters) (*PaginatedExpenses, error)
	Update(ownerID uuid.UUID, id int64, data *UpdateExpenseData) (*Expense, error)
	Delete(ownerID uuid.UUID, id int64) error

	TotalsByCategory(ownerID uuid.UUID) ([]*CategorySpending, error)
	TotalsByMonth(ownerID uuid.UUID) ([]*MonthlySpending, error)
	SumByDateRange(ownerID uuid.UUID, startDate, endDate time.Time) (decimal.Decimal, error)
	SumByCategoryAndDateRange(ownerID uuid.UUID, categoryID int64, startDate, endDate time.Time) (decimal.Decimal, error)
}
