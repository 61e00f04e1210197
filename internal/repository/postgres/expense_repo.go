package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/K-Harikrishnan-7/Personal-Expense-Tracker/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// ExpenseRepository implements domain.ExpenseRepository using PostgreSQL.
// Amounts are stored as NUMERIC(10,2); all aggregate queries COALESCE to zero
// so an empty result set sums to exact zero rather than NULL.
type ExpenseRepository struct {
	pool *pgxpool.Pool
}

// NewExpenseRepository creates a new ExpenseRepository
func NewExpenseRepository(pool *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{pool: pool}
}

const expenseColumns = `e.id, e.owner_id, e.category_id, c.name, e.amount, e.description, e.date, e.created_at, e.updated_at`

const expenseFrom = ` FROM expenses e JOIN categories c ON c.id = e.category_id`

// Create creates a new expense
func (r *ExpenseRepository) Create(expense *domain.Expense) (*domain.Expense, error) {
	ctx := context.Background()

	amount, err := decimalToPgNumeric(expense.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	var id int64
	err = r.pool.QueryRow(ctx, `
		INSERT INTO expenses (owner_id, category_id, amount, description, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		expense.OwnerID, expense.CategoryID, amount,
		textOrNull(expense.Description),
		pgtype.Date{Time: expense.Date, Valid: true}).Scan(&id)
	if err != nil {
		return nil, err
	}
	return r.GetByID(expense.OwnerID, id)
}

// GetByID retrieves an expense by its ID within an owner's scope
func (r *ExpenseRepository) GetByID(ownerID uuid.UUID, id int64) (*domain.Expense, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx,
		`SELECT `+expenseColumns+expenseFrom+` WHERE e.owner_id = $1 AND e.id = $2`,
		ownerID, id)
	expense, err := scanExpense(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrExpenseNotFound
		}
		return nil, err
	}
	return expense, nil
}

// GetByOwner retrieves expenses for an owner with optional filters and pagination
func (r *ExpenseRepository) GetByOwner(ownerID uuid.UUID, filters *domain.ExpenseFilters) (*domain.PaginatedExpenses, error) {
	ctx := context.Background()

	page := int32(1)
	pageSize := int32(domain.DefaultPageSize)
	if filters != nil {
		if filters.Page > 0 {
			page = filters.Page
		}
		if filters.PageSize > 0 {
			pageSize = filters.PageSize
			if pageSize > domain.MaxPageSize {
				pageSize = domain.MaxPageSize
			}
		}
	}
	offset := (page - 1) * pageSize

	where := ` WHERE e.owner_id = $1`
	args := []any{ownerID}
	if filters != nil {
		if filters.CategoryID != nil {
			args = append(args, *filters.CategoryID)
			where += fmt.Sprintf(` AND e.category_id = $%d`, len(args))
		}
		if filters.StartDate != nil {
			args = append(args, pgtype.Date{Time: *filters.StartDate, Valid: true})
			where += fmt.Sprintf(` AND e.date >= $%d`, len(args))
		}
		if filters.EndDate != nil {
			args = append(args, pgtype.Date{Time: *filters.EndDate, Valid: true})
			where += fmt.Sprintf(` AND e.date <= $%d`, len(args))
		}
	}

	var totalItems int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*)`+expenseFrom+where, args...).Scan(&totalItems); err != nil {
		return nil, err
	}

	query := `SELECT ` + expenseColumns + expenseFrom + where +
		` ORDER BY e.date DESC, e.id DESC` +
		fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, pageSize, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []*domain.Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	totalPages := int32(totalItems / int64(pageSize))
	if totalItems%int64(pageSize) > 0 {
		totalPages++
	}

	return &domain.PaginatedExpenses{
		Data:       expenses,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}, nil
}

// Update updates an expense's details
func (r *ExpenseRepository) Update(ownerID uuid.UUID, id int64, data *domain.UpdateExpenseData) (*domain.Expense, error) {
	ctx := context.Background()

	amount, err := decimalToPgNumeric(data.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE expenses
		SET category_id = $3, amount = $4, description = $5, date = $6, updated_at = now()
		WHERE owner_id = $1 AND id = $2`,
		ownerID, id, data.CategoryID, amount,
		textOrNull(data.Description),
		pgtype.Date{Time: data.Date, Valid: true})
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrExpenseNotFound
	}
	return r.GetByID(ownerID, id)
}

// Delete removes an expense
func (r *ExpenseRepository) Delete(ownerID uuid.UUID, id int64) error {
	ctx := context.Background()
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM expenses WHERE owner_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrExpenseNotFound
	}
	return nil
}

// TotalsByCategory returns summed amounts grouped by category name. Categories
// with no expenses produce no row.
func (r *ExpenseRepository) TotalsByCategory(ownerID uuid.UUID) ([]*domain.CategorySpending, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT c.name, SUM(e.amount)
		FROM expenses e
		JOIN categories c ON c.id = e.category_id
		WHERE e.owner_id = $1
		GROUP BY c.name`,
		ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []*domain.CategorySpending
	for rows.Next() {
		var name string
		var total pgtype.Numeric
		if err := rows.Scan(&name, &total); err != nil {
			return nil, err
		}
		totals = append(totals, &domain.CategorySpending{
			CategoryName: name,
			TotalAmount:  pgNumericToDecimal(total),
		})
	}
	return totals, rows.Err()
}

// TotalsByMonth returns summed amounts grouped by "YYYY-MM" month label,
// ascending by label
func (r *ExpenseRepository) TotalsByMonth(ownerID uuid.UUID) ([]*domain.MonthlySpending, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT to_char(e.date, 'YYYY-MM') AS month, SUM(e.amount)
		FROM expenses e
		WHERE e.owner_id = $1
		GROUP BY month
		ORDER BY month ASC`,
		ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []*domain.MonthlySpending
	for rows.Next() {
		var month string
		var total pgtype.Numeric
		if err := rows.Scan(&month, &total); err != nil {
			return nil, err
		}
		totals = append(totals, &domain.MonthlySpending{
			Month:       month,
			TotalAmount: pgNumericToDecimal(total),
		})
	}
	return totals, rows.Err()
}

// SumByDateRange sums all of an owner's expenses with date in [start, end]
func (r *ExpenseRepository) SumByDateRange(ownerID uuid.UUID, startDate, endDate time.Time) (decimal.Decimal, error) {
	ctx := context.Background()
	var total pgtype.Numeric
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE owner_id = $1 AND date BETWEEN $2 AND $3`,
		ownerID,
		pgtype.Date{Time: startDate, Valid: true},
		pgtype.Date{Time: endDate, Valid: true}).Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	return pgNumericToDecimal(total), nil
}

// SumByCategoryAndDateRange sums an owner's expenses in one category with
// date in [start, end]
func (r *ExpenseRepository) SumByCategoryAndDateRange(ownerID uuid.UUID, categoryID int64, startDate, endDate time.Time) (decimal.Decimal, error) {
	ctx := context.Background()
	var total pgtype.Numeric
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE owner_id = $1 AND category_id = $2 AND date BETWEEN $3 AND $4`,
		ownerID, categoryID,
		pgtype.Date{Time: startDate, Valid: true},
		pgtype.Date{Time: endDate, Valid: true}).Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	return pgNumericToDecimal(total), nil
}

func scanExpense(row pgx.Row) (*domain.Expense, error) {
	var e domain.Expense
	var amount pgtype.Numeric
	var description pgtype.Text
	var date pgtype.Date
	var createdAt, updatedAt pgtype.Timestamptz
	err := row.Scan(&e.ID, &e.OwnerID, &e.CategoryID, &e.CategoryName,
		&amount, &description, &date, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	e.Amount = pgNumericToDecimal(amount)
	if description.Valid {
		e.Description = &description.String
	}
	e.Date = date.Time
	e.CreatedAt = createdAt.Time
	e.UpdatedAt = updatedAt.Time
	return &e, nil
}

func decimalToPgNumeric(d decimal.Decimal) (pgtype.Numeric, error) {
	var num pgtype.Numeric
	if err := num.Scan(d.String()); err != nil {
		return pgtype.Numeric{}, err
	}
	return num, nil
}

func pgNumericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}
