package handler

import (
	"net/http"

	"github.com/K-Harikrishnan-7/Personal-Expense-Tracker/internal/domain"
	"github.com/K-Harikrishnan-7/Personal-Expense-Tracker/internal/middleware"
	"github.com/K-Harikrishnan-7/Personal-Expense-Tracker/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	Name       *string `json:"name,omitempty"`
	PictureURL *string `json:"pictureUrl,omitempty"`
}

// Callback handles POST /api/v1/auth/callback. It upserts the user record
// from the validated token claims so subsequent requests can resolve an
// owner identifier.
func (h *AuthHandler) Callback(c echo.Context) error {
	auth0ID := middleware.GetAuth0ID(c)
	if auth0ID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	claims := middleware.GetCustomClaims(c)
	if claims == nil || claims.Email == "" {
		return NewUnauthorizedError(c, "Email claim required")
	}

	var name, pictureURL *string
	if claims.Name != "" {
		name = &claims.Name
	}
	if claims.Picture != "" {
		pictureURL = &claims.Picture
	}

	user, err := h.authService.CreateOrGetUser(auth0ID, claims.Email, name, pictureURL)
	if err != nil {
		log.Error().Err(err).Str("auth0_id", auth0ID).Msg("Failed to upsert user")
		return NewInternalError(c, "Failed to resolve user")
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(c echo.Context) error {
	auth0ID := middleware.GetAuth0ID(c)
	if auth0ID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	user, err := h.authService.GetUserByAuth0ID(auth0ID)
	if err != nil {
		return NewNotFoundError(c, "User not found")
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

func toUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:         user.ID.String(),
		Email:      user.Email,
		Name:       user.Name,
		PictureURL: user.PictureURL,
	}
}
