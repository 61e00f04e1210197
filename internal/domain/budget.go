package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ScopeKind discriminates a budget's spending boundary.
type ScopeKind int

const (
	// ScopeOverall covers every expense of the owner in the budget window.
	ScopeOverall ScopeKind = iota
	// ScopeCategory restricts the window to a single category.
	ScopeCategory
)

// Scope is a budget's spending boundary: all of the owner's expenses, or one
// category. CategoryID is meaningful only when Kind is ScopeCategory.
type Scope struct {
	Kind       ScopeKind
	CategoryID int64
}

// OverallScope returns the scope covering all of an owner's expenses
func OverallScope() Scope {
	return Scope{Kind: ScopeOverall}
}

// CategoryScope returns a scope restricted to one category
func CategoryScope(categoryID int64) Scope {
	return Scope{Kind: ScopeCategory, CategoryID: categoryID}
}

// Budget is a spending limit over a closed date window [StartDate, EndDate],
// optionally restricted to one category. A nil CategoryID means the budget
// covers the owner's overall spending in the window.
type Budget struct {
	ID         int64           `json:"id"`
	OwnerID    uuid.UUID       `json:"ownerId"`
	Amount     decimal.Decimal `json:"amount"`
	StartDate  time.Time       `json:"startDate"`
	EndDate    time.Time       `json:"endDate"`
	CategoryID *int64          `json:"categoryId,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// Scope resolves the budget's stored nullable category reference into the
// explicit two-variant scope used by the evaluator.
func (b *Budget) Scope() Scope {
	if b.CategoryID != nil {
		return CategoryScope(*b.CategoryID)
	}
	return OverallScope()
}

// UpdateBudgetData holds the fields applied by a budget update. A nil
// CategoryID clears any category restriction, reverting the scope to overall.
type UpdateBudgetData struct {
	Amount     decimal.Decimal
	StartDate  time.Time
	EndDate    time.Time
	CategoryID *int64
}

// BudgetRepository defines the interface for budget persistence operations
type BudgetRepository interface {
	Create(budget *Budget) (*Budget, error)
	GetByID(ownerID uuid.UUID, id int64) (*Budget, error)
	GetAllByOwner(ownerID uuid.UUID) ([]*Budget, error)
	Update(ownerID uuid.UUID, id int64, data *UpdateBudgetData) (*Budget, error)
	Delete(ownerID uuid.UUID, id int64) error
}
