package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/bookstore-catalog/internal/domain"
	"github.com/spec-kit/bookstore-catalog/internal/repository"
	apperrors "github.com/spec-kit/bookstore-catalog/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated seller and the verified claims the
// token carried.
type Principal struct {
	Seller *domain.Seller
	Claims *Claims
}

// Middleware validates bearer tokens and loads the seller principal.
type Middleware struct {
	tokens  *TokenManager
	sellers repository.SellerRepository
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager, sellers repository.SellerRepository) *Middleware {
	return &Middleware{tokens: tokens, sellers: sellers}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		switch {
		case errors.Is(err, ErrTokenExpired):
			return apperrors.NewUnauthorized("token expired")
		case errors.Is(err, ErrTokenBadSignature):
			return apperrors.NewUnauthorized("invalid token signature")
		default:
			return apperrors.NewUnauthorized("invalid token")
		}
	}

	seller, err := m.sellers.GetByEmail(c.UserContext(), claims.Subject)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewUnauthorized("seller not found")
		}
		return apperrors.MapError(err)
	}

	c.Locals(principalKey, &Principal{Seller: seller, Claims: claims})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated seller.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
