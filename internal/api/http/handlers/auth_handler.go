package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bookstore-catalog/internal/api/dto"
	"github.com/spec-kit/bookstore-catalog/internal/auth"
	"github.com/spec-kit/bookstore-catalog/internal/service"
	"github.com/spec-kit/bookstore-catalog/internal/validation"
	apperrors "github.com/spec-kit/bookstore-catalog/pkg/util"
)

// AuthHandler exposes token issuance and the authenticated probe endpoint.
type AuthHandler struct {
	auth      *service.AuthService
	validator *validation.Validator
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, validator *validation.Validator) *AuthHandler {
	return &AuthHandler{auth: authService, validator: validator}
}

// Token handles POST /auth/token.
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var req dto.TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.validator.ValidateTokenRequest(&req); err != nil {
		return err
	}

	token, err := h.auth.IssueToken(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(dto.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// SecureEndpoint handles GET /auth/secure-endpoint and echoes the verified
// claims back to the caller.
func (h *AuthHandler) SecureEndpoint(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	return c.JSON(fiber.Map{
		"message": "You have access to this endpoint",
		"user": fiber.Map{
			"sub": principal.Claims.Subject,
			"exp": principal.Claims.ExpiresAt.Unix(),
		},
	})
}
