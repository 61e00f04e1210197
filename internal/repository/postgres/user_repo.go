package postgres

import (
	"context"

	"github.com/K-Harikrishnan-7/Personal-Expense-Tracker/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository implements domain.UserRepository using PostgreSQL
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, auth0_id, email, name, picture_url, created_at, updated_at`

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*domain.User, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// GetByAuth0ID retrieves a user by Auth0 subject
func (r *UserRepository) GetByAuth0ID(auth0ID string) (*domain.User, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE auth0_id = $1`, auth0ID)
	return scanUser(row)
}

// CreateOrGetByAuth0ID upserts a user record from validated token claims
func (r *UserRepository) CreateOrGetByAuth0ID(auth0ID, email string, name, pictureURL *string) (*domain.User, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (auth0_id, email, name, picture_url)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (auth0_id) DO UPDATE
		SET email = EXCLUDED.email,
		    name = COALESCE(EXCLUDED.name, users.name),
		    picture_url = COALESCE(EXCLUDED.picture_url, users.picture_url),
		    updated_at = now()
		RETURNING `+userColumns,
		auth0ID, email, textOrNull(name), textOrNull(pictureURL))
	return scanUser(row)
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var name, pictureURL pgtype.Text
	var createdAt, updatedAt pgtype.Timestamptz
	err := row.Scan(&u.ID, &u.Auth0ID, &u.Email, &name, &pictureURL, &createdAt, &updatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	if name.Valid {
		u.Name = &name.String
	}
	if pictureURL.Valid {
		u.PictureURL = &pictureURL.String
	}
	u.CreatedAt = createdAt.Time
	u.UpdatedAt = updatedAt.Time
	return &u, nil
}

func textOrNull(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
