package service

import (
	"strings"

	"github.com/K-Harikrishnan-7/Personal-Expense-Tracker/internal/domain"
	"github.com/google/uuid"
)

// CategoryService handles category business logic
type CategoryService struct {
	categoryRepo domain.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo domain.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// CreateCategory creates a new category for the owner
func (s *CategoryService) CreateCategory(ownerID uuid.UUID, name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxCategoryNameLength {
		return nil, domain.ErrNameTooLong
	}

	return s.categoryRepo.Create(&domain.Category{
		OwnerID: ownerID,
		Name:    name,
	})
}

// GetCategories retrieves all categories for the owner
func (s *CategoryService) GetCategories(ownerID uuid.UUID) ([]*domain.Category, error) {
	return s.categoryRepo.GetAllByOwner(ownerID)
}

// GetCategoryByID retrieves one of the owner's categories
func (s *CategoryService) GetCategoryByID(ownerID uuid.UUID, id int64) (*domain.Category, error) {
	return s.categoryRepo.GetByID(ownerID, id)
}

// UpdateCategory renames one of the owner's categories
func (s *CategoryService) UpdateCategory(ownerID uuid.UUID, id int64, name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxCategoryNameLength {
		return nil, domain.ErrNameTooLong
	}

	return s.categoryRepo.Update(ownerID, id, name)
}

// DeleteCategory removes one of the owner's categories
func (s *CategoryService) DeleteCategory(ownerID uuid.UUID, id int64) error {
	return s.categoryRepo.Delete(ownerID, id)
}
