package domain

import "errors"

// Domain errors
var (
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrInternalError         = errors.New("internal error")
	ErrUserNotFound          = errors.New("user not found")
	ErrCategoryNotFound      = errors.New("category not found")
	ErrExpenseNotFound       = errors.New("expense not found")
	ErrBudgetNotFound        = errors.New("budget not found")
	ErrCategoryAlreadyExists = errors.New("category already exists")
	ErrNameRequired          = errors.New("name is required")
	ErrNameTooLong           = errors.New("name exceeds maximum length")
	ErrDescriptionTooLong    = errors.New("description exceeds maximum length")
	ErrInvalidAmount         = errors.New("amount must be greater than zero")
	ErrInvalidDateRange      = errors.New("start date must not be after end date")
)

// Validation constants
const (
	MaxCategoryNameLength       = 50
	MaxExpenseDescriptionLength = 255
)
