package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func TestGetAuth0ID_Present(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), Auth0IDKey, "auth0|12345")
	req = req.WithContext(ctx)
	c := e.NewContext(req, httptest.NewRecorder())

	if got := GetAuth0ID(c); got != "auth0|12345" {
		t.Errorf("Expected 'auth0|12345', got %s", got)
	}
}

func TestGetAuth0ID_Absent(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	if got := GetAuth0ID(c); got != "" {
		t.Errorf("Expected empty string, got %s", got)
	}
}

func TestGetOwnerID_Present(t *testing.T) {
	e := echo.New()
	ownerID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), OwnerIDKey, ownerID)
	req = req.WithContext(ctx)
	c := e.NewContext(req, httptest.NewRecorder())

	if got := GetOwnerID(c); got != ownerID {
		t.Errorf("Expected %s, got %s", ownerID, got)
	}
}

func TestGetOwnerID_Absent(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	if got := GetOwnerID(c); got != uuid.Nil {
		t.Errorf("Expected uuid.Nil, got %s", got)
	}
}

func TestGetCustomClaims(t *testing.T) {
	e := echo.New()
	claims := &validator.ValidatedClaims{
		RegisteredClaims: validator.RegisteredClaims{Subject: "auth0|12345"},
		CustomClaims: &CustomClaims{
			Email: "test@example.com",
			Name:  "Test User",
		},
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), ClaimsKey, claims)
	req = req.WithContext(ctx)
	c := e.NewContext(req, httptest.NewRecorder())

	custom := GetCustomClaims(c)
	if custom == nil {
		t.Fatal("Expected custom claims, got nil")
	}
	if custom.Email != "test@example.com" {
		t.Errorf("Expected email 'test@example.com', got %s", custom.Email)
	}
}

func TestGetCustomClaims_NoClaims(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	if custom := GetCustomClaims(c); custom != nil {
		t.Errorf("Expected nil custom claims, got %v", custom)
	}
}

func TestCustomClaims_Validate(t *testing.T) {
	claims := CustomClaims{Email: "test@example.com"}
	if err := claims.Validate(context.Background()); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}
