package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/bookstore-catalog/internal/auth"
	"github.com/spec-kit/bookstore-catalog/internal/config"
	"github.com/spec-kit/bookstore-catalog/internal/repository"
	apperrors "github.com/spec-kit/bookstore-catalog/pkg/util"
)

// AuthService coordinates the credential check and token issuance flow.
type AuthService struct {
	sellers  repository.SellerRepository
	tokenMgr *auth.TokenManager
	logger   *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, sellers repository.SellerRepository, logger *zap.Logger) (*AuthService, error) {
	tokenMgr, err := auth.NewTokenManager(cfg.SecretKey, cfg.TokenAlgorithm, cfg.AccessTokenTTL())
	if err != nil {
		return nil, err
	}
	return &AuthService{sellers: sellers, tokenMgr: tokenMgr, logger: logger}, nil
}

// IssueToken authenticates a seller by email and password and returns a
// signed bearer token with the email as subject. An unknown email and a bad
// password are indistinguishable to the caller.
func (s *AuthService) IssueToken(ctx context.Context, email, password string) (string, error) {
	seller, err := s.sellers.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.NewUnauthorized("invalid credentials")
		}
		return "", apperrors.MapError(err)
	}

	if err := auth.ComparePassword(seller.PasswordHash, password); err != nil {
		return "", apperrors.NewUnauthorized("invalid credentials")
	}

	token, _, err := s.tokenMgr.GenerateToken(seller.Email)
	if err != nil {
		return "", apperrors.MapError(err)
	}

	s.logger.Info("token issued", zap.Int64("seller_id", seller.ID))
	return token, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
