package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/K-Harikrishnan-7/Personal-Expense-Tracker/internal/domain"
	"github.com/K-Harikrishnan-7/Personal-Expense-Tracker/internal/middleware"
	"github.com/K-Harikrishnan-7/Personal-Expense-Tracker/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// CategoryHandler handles category HTTP requests
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategoryRequest represents the create category request body
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// UpdateCategoryRequest represents the update category request body
type UpdateCategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// CreateCategory handles POST /api/v1/categories
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	category, err := h.categoryService.CreateCategory(ownerID, req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrNameRequired) {
			return NewValidationError(c, "Category name is required", []ValidationError{
				{Field: "name", Message: "Name cannot be empty"},
			})
		}
		if errors.Is(err, domain.ErrNameTooLong) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "name", Message: "Name must be 50 characters or less"},
			})
		}
		if errors.Is(err, domain.ErrCategoryAlreadyExists) {
			return NewConflictError(c, "A category with this name already exists")
		}
		log.Error().Err(err).Str("owner_id", ownerID.String()).Msg("Failed to create category")
		return NewInternalError(c, "Failed to create category")
	}

	log.Info().Str("owner_id", ownerID.String()).Int64("category_id", category.ID).Str("name", category.Name).Msg("Category created")

	return c.JSON(http.StatusCreated, toCategoryResponse(category))
}

// GetCategories handles GET /api/v1/categories
func (h *CategoryHandler) GetCategories(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	categories, err := h.categoryService.GetCategories(ownerID)
	if err != nil {
		log.Error().Err(err).Str("owner_id", ownerID.String()).Msg("Failed to get categories")
		return NewInternalError(c, "Failed to get categories")
	}

	response := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		response[i] = toCategoryResponse(category)
	}

	return c.JSON(http.StatusOK, response)
}

// GetCategory handles GET /api/v1/categories/:id
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return NewValidationError(c, "Invalid category ID", nil)
	}

	category, err := h.categoryService.GetCategoryByID(ownerID, id)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return NewNotFoundError(c, "Category not found")
		}
		log.Error().Err(err).Str("owner_id", ownerID.String()).Int64("category_id", id).Msg("Failed to get category")
		return NewInternalError(c, "Failed to get category")
	}

	return c.JSON(http.StatusOK, toCategoryResponse(category))
}

// UpdateCategory handles PUT /api/v1/categories/:id
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return NewValidationError(c, "Invalid category ID", nil)
	}

	var req UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	category, err := h.categoryService.UpdateCategory(ownerID, id, req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return NewNotFoundError(c, "Category not found")
		}
		if errors.Is(err, domain.ErrNameRequired) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "name", Message: "Name is required"},
			})
		}
		if errors.Is(err, domain.ErrNameTooLong) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "name", Message: "Name must be 50 characters or less"},
			})
		}
		if errors.Is(err, domain.ErrCategoryAlreadyExists) {
			return NewConflictError(c, "A category with this name already exists")
		}
		log.Error().Err(err).Str("owner_id", ownerID.String()).Int64("category_id", id).Msg("Failed to update category")
		return NewInternalError(c, "Failed to update category")
	}

	log.Info().Str("owner_id", ownerID.String()).Int64("category_id", category.ID).Str("name", category.Name).Msg("Category updated")
	return c.JSON(http.StatusOK, toCategoryResponse(category))
}

// DeleteCategory handles DELETE /api/v1/categories/:id
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return NewValidationError(c, "Invalid category ID", nil)
	}

	if err := h.categoryService.DeleteCategory(ownerID, id); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return NewNotFoundError(c, "Category not found")
		}
		log.Error().Err(err).Str("owner_id", ownerID.String()).Int64("category_id", id).Msg("Failed to delete category")
		return NewInternalError(c, "Failed to delete category")
	}

	log.Info().Str("owner_id", ownerID.String()).Int64("category_id", id).Msg("Category deleted")
	return c.NoContent(http.StatusNoContent)
}

func toCategoryResponse(category *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		CreatedAt: category.CreatedAt.Format(time.RFC3339),
		UpdatedAt: category.UpdatedAt.Format(time.RFC3339),
	}
}
