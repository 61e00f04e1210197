package postgres

import (
	"context"
	"errors"

	"github.com/K-Harikrishnan-7/Personal-Expense-Tracker/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CategoryRepository implements domain.CategoryRepository using PostgreSQL
type CategoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

const categoryColumns = `id, owner_id, name, created_at, updated_at`

// Create creates a new category. The (owner_id, name) unique constraint maps
// to domain.ErrCategoryAlreadyExists.
func (r *CategoryRepository) Create(category *domain.Category) (*domain.Category, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO categories (owner_id, name)
		VALUES ($1, $2)
		RETURNING `+categoryColumns,
		category.OwnerID, category.Name)
	created, err := scanCategory(row)
	if err != nil {
		if isPgUniqueViolation(err) {
			return nil, domain.ErrCategoryAlreadyExists
		}
		return nil, err
	}
	return created, nil
}

// GetByID retrieves a category by its ID within an owner's scope
func (r *CategoryRepository) GetByID(ownerID uuid.UUID, id int64) (*domain.Category, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE owner_id = $1 AND id = $2`,
		ownerID, id)
	category, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

// GetAllByOwner retrieves all categories for an owner
func (r *CategoryRepository) GetAllByOwner(ownerID uuid.UUID) ([]*domain.Category, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE owner_id = $1 ORDER BY name`,
		ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*domain.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

// Update renames a category
func (r *CategoryRepository) Update(ownerID uuid.UUID, id int64, name string) (*domain.Category, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		UPDATE categories SET name = $3, updated_at = now()
		WHERE owner_id = $1 AND id = $2
		RETURNING `+categoryColumns,
		ownerID, id, name)
	category, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		if isPgUniqueViolation(err) {
			return nil, domain.ErrCategoryAlreadyExists
		}
		return nil, err
	}
	return category, nil
}

// Delete removes a category
func (r *CategoryRepository) Delete(ownerID uuid.UUID, id int64) error {
	ctx := context.Background()
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM categories WHERE owner_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var c domain.Category
	var createdAt, updatedAt pgtype.Timestamptz
	if err := row.Scan(&c.ID, &c.OwnerID, &c.Name, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time
	return &c, nil
}

// isPgUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505)
func isPgUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
