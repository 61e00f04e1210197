package service

import (
	"strings"
	"testing"

	"github.com/K-Harikrishnan-7/Personal-Expense-Tracker/internal/domain"
	"github.com/K-Harikrishnan-7/Personal-Expense-Tracker/internal/testutil"
	"github.com/google/uuid"
)

func TestCreateCategory_Success(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	categoryService := NewCategoryService(categoryRepo)

	ownerID := uuid.New()

	category, err := categoryService.CreateCategory(ownerID, "Food")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if category.Name != "Food" {
		t.Errorf("Expected name 'Food', got %s", category.Name)
	}

	if category.OwnerID != ownerID {
		t.Errorf("Expected owner ID %s, got %s", ownerID, category.OwnerID)
	}
}

func TestCreateCategory_EmptyName(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	categoryService := NewCategoryService(categoryRepo)

	_, err := categoryService.CreateCategory(uuid.New(), "")
	if err != domain.ErrNameRequired {
		t.Errorf("Expected ErrNameRequired, got %v", err)
	}
}

func TestCreateCategory_WhitespaceOnlyName(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	categoryService := NewCategoryService(categoryRepo)

	_, err := categoryService.CreateCategory(uuid.New(), "   ")
	if err != domain.ErrNameRequired {
		t.Errorf("Expected ErrNameRequired, got %v", err)
	}
}

func TestCreateCategory_TrimsName(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	categoryService := NewCategoryService(categoryRepo)

	category, err := categoryService.CreateCategory(uuid.New(), "  Food  ")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if category.Name != "Food" {
		t.Errorf("Expected trimmed name 'Food', got '%s'", category.Name)
	}
}

func TestCreateCategory_NameTooLong(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	categoryService := NewCategoryService(categoryRepo)

	longName := strings.Repeat("a", domain.MaxCategoryNameLength+1)

	_, err := categoryService.CreateCategory(uuid.New(), longName)
	if err != domain.ErrNameTooLong {
		t.Errorf("Expected ErrNameTooLong, got %v", err)
	}
}

func TestCreateCategory_DuplicateName(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	categoryService := NewCategoryService(categoryRepo)

	ownerID := uuid.New()

	_, err := categoryService.CreateCategory(ownerID, "Food")
	if err != nil {
		t.Fatalf("Expected no error for first create, got %v", err)
	}

	_, err = categoryService.CreateCategory(ownerID, "Food")
	if err != domain.ErrCategoryAlreadyExists {
		t.Errorf("Expected ErrCategoryAlreadyExists, got %v", err)
	}
}

func TestCreateCategory_SameNameDifferentOwners(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	categoryService := NewCategoryService(categoryRepo)

	_, err := categoryService.CreateCategory(uuid.New(), "Food")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Uniqueness is scoped per owner
	_, err = categoryService.CreateCategory(uuid.New(), "Food")
	if err != nil {
		t.Errorf("Expected no error for same name under another owner, got %v", err)
	}
}

func TestCreateCategory_CaseSensitiveNames(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	categoryService := NewCategoryService(categoryRepo)

	ownerID := uuid.New()

	_, err := categoryService.CreateCategory(ownerID, "Food")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Names compare with literal equality, so a case variant is a new category
	_, err = categoryService.CreateCategory(ownerID, "food")
	if err != nil {
		t.Errorf("Expected no error for case variant name, got %v", err)
	}
}

func TestGetCategories_Success(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	categoryService := NewCategoryService(categoryRepo)

	ownerID := uuid.New()

	for _, name := range []string{"Food", "Travel", "Rent"} {
		if _, err := categoryService.CreateCategory(ownerID, name); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}

	categories, err := categoryService.GetCategories(ownerID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(categories) != 3 {
		t.Errorf("Expected 3 categories, got %d", len(categories))
	}
}

func TestGetCategoryByID_NotFound(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	categoryService := NewCategoryService(categoryRepo)

	_, err := categoryService.GetCategoryByID(uuid.New(), 999)
	if err != domain.ErrCategoryNotFound {
		t.Errorf("Expected ErrCategoryNotFound, got %v", err)
	}
}

func TestGetCategoryByID_WrongOwner(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	categoryService := NewCategoryService(categoryRepo)

	category, err := categoryService.CreateCategory(uuid.New(), "Food")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, err = categoryService.GetCategoryByID(uuid.New(), category.ID)
	if err != domain.ErrCategoryNotFound {
		t.Errorf("Expected ErrCategoryNotFound for another owner, got %v", err)
	}
}

func TestUpdateCategory_Success(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	categoryService := NewCategoryService(categoryRepo)

	ownerID := uuid.New()

	category, err := categoryService.CreateCategory(ownerID, "Food")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	updated, err := categoryService.UpdateCategory(ownerID, category.ID, "Groceries")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if updated.Name != "Groceries" {
		t.Errorf("Expected name 'Groceries', got %s", updated.Name)
	}
}

func TestUpdateCategory_NotFound(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	categoryService := NewCategoryService(categoryRepo)

	_, err := categoryService.UpdateCategory(uuid.New(), 999, "Groceries")
	if err != domain.ErrCategoryNotFound {
		t.Errorf("Expected ErrCategoryNotFound, got %v", err)
	}
}

func TestDeleteCategory_Success(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	categoryService := NewCategoryService(categoryRepo)

	ownerID := uuid.New()

	category, err := categoryService.CreateCategory(ownerID, "Food")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := categoryService.DeleteCategory(ownerID, category.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, err = categoryService.GetCategoryByID(ownerID, category.ID)
	if err != domain.ErrCategoryNotFound {
		t.Errorf("Expected ErrCategoryNotFound after delete, got %v", err)
	}
}

func TestDeleteCategory_WrongOwner(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	categoryService := NewCategoryService(categoryRepo)

	category, err := categoryService.CreateCategory(uuid.New(), "Food")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := categoryService.DeleteCategory(uuid.New(), category.ID); err != domain.ErrCategoryNotFound {
		t.Errorf("Expected ErrCategoryNotFound for another owner, got %v", err)
	}
}
