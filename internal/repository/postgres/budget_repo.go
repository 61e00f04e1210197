package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/K-Harikrishnan-7/Personal-Expense-Tracker/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BudgetRepository implements domain.BudgetRepository using PostgreSQL
type BudgetRepository struct {
	pool *pgxpool.Pool
}

// NewBudgetRepository creates a new BudgetRepository
func NewBudgetRepository(pool *pgxpool.Pool) *BudgetRepository {
	return &BudgetRepository{pool: pool}
}

const budgetColumns = `id, owner_id, amount, start_date, end_date, category_id, created_at, updated_at`

// Create creates a new budget
func (r *BudgetRepository) Create(budget *domain.Budget) (*domain.Budget, error) {
	ctx := context.Background()

	amount, err := decimalToPgNumeric(budget.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO budgets (owner_id, amount, start_date, end_date, category_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+budgetColumns,
		budget.OwnerID, amount,
		pgtype.Date{Time: budget.StartDate, Valid: true},
		pgtype.Date{Time: budget.EndDate, Valid: true},
		budget.CategoryID)
	return scanBudgetRow(row)
}

// GetByID retrieves a budget by its ID within an owner's scope
func (r *BudgetRepository) GetByID(ownerID uuid.UUID, id int64) (*domain.Budget, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx,
		`SELECT `+budgetColumns+` FROM budgets WHERE owner_id = $1 AND id = $2`,
		ownerID, id)
	budget, err := scanBudgetRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBudgetNotFound
		}
		return nil, err
	}
	return budget, nil
}

// GetAllByOwner retrieves all budgets for an owner in creation order
func (r *BudgetRepository) GetAllByOwner(ownerID uuid.UUID) ([]*domain.Budget, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx,
		`SELECT `+budgetColumns+` FROM budgets WHERE owner_id = $1 ORDER BY id`,
		ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []*domain.Budget
	for rows.Next() {
		budget, err := scanBudgetRow(rows)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, budget)
	}
	return budgets, rows.Err()
}

// Update updates a budget's details. A nil CategoryID in data clears the
// category restriction.
func (r *BudgetRepository) Update(ownerID uuid.UUID, id int64, data *domain.UpdateBudgetData) (*domain.Budget, error) {
	ctx := context.Background()

	amount, err := decimalToPgNumeric(data.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	row := r.pool.QueryRow(ctx, `
		UPDATE budgets
		SET amount = $3, start_date = $4, end_date = $5, category_id = $6, updated_at = now()
		WHERE owner_id = $1 AND id = $2
		RETURNING `+budgetColumns,
		ownerID, id, amount,
		pgtype.Date{Time: data.StartDate, Valid: true},
		pgtype.Date{Time: data.EndDate, Valid: true},
		data.CategoryID)
	budget, err := scanBudgetRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBudgetNotFound
		}
		return nil, err
	}
	return budget, nil
}

// Delete removes a budget
func (r *BudgetRepository) Delete(ownerID uuid.UUID, id int64) error {
	ctx := context.Background()
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM budgets WHERE owner_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBudgetNotFound
	}
	return nil
}

func scanBudgetRow(row pgx.Row) (*domain.Budget, error) {
	var b domain.Budget
	var amount pgtype.Numeric
	var startDate, endDate pgtype.Date
	var categoryID pgtype.Int8
	var createdAt, updatedAt pgtype.Timestamptz
	err := row.Scan(&b.ID, &b.OwnerID, &amount, &startDate, &endDate,
		&categoryID, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	b.Amount = pgNumericToDecimal(amount)
	b.StartDate = startDate.Time
	b.EndDate = endDate.Time
	if categoryID.Valid {
		b.CategoryID = &categoryID.Int64
	}
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time
	return &b, nil
}
