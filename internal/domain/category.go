package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category is a named grouping for expenses. Names are unique per owner and
// compared with literal (case-sensitive) equality.
type Category struct {
	ID        int64     `json:"id"`
	OwnerID   uuid.UUID `json:"ownerId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CategoryRepository defines the interface for category persistence operations
type CategoryRepository interface {
	Create(category *Category) (*Category, error)
	GetByID(ownerID uuid.UUID, id int64) (*Category, error)
	GetAllByOwner(ownerID uuid.UUID) ([]*Category, error)
	Update(ownerID uuid.UUID, id int64, name string) (*Category, error)
	Delete(ownerID uuid.UUID, id int64) error
}
