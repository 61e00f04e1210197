package service

import (
	"github.com/K-Harikrishnan-7/Personal-Expense-Tracker/internal/domain"
	"github.com/google/uuid"
)

// AuthService resolves authenticated principals into owner records
type AuthService struct {
	userRepo domain.UserRepository
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo domain.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// CreateOrGetUser upserts a user from validated token claims and returns the
// owner record
func (s *AuthService) CreateOrGetUser(auth0ID, email string, name, pictureURL *string) (*domain.User, error) {
	return s.userRepo.CreateOrGetByAuth0ID(auth0ID, email, name, pictureURL)
}

// GetUserByAuth0ID retrieves the owner record for an Auth0 subject
func (s *AuthService) GetUserByAuth0ID(auth0ID string) (*domain.User, error) {
	return s.userRepo.GetByAuth0ID(auth0ID)
}

// GetUserByID retrieves an owner record by its opaque identifier
func (s *AuthService) GetUserByID(id uuid.UUID) (*domain.User, error) {
	return s.userRepo.GetByID(id)
}
