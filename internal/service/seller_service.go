package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/bookstore-catalog/internal/auth"
	"github.com/spec-kit/bookstore-catalog/internal/domain"
	"github.com/spec-kit/bookstore-catalog/internal/repository"
	apperrors "github.com/spec-kit/bookstore-catalog/pkg/util"
)

// SellerInput carries validated seller fields. Password is plaintext here;
// only its bcrypt hash ever reaches the repository.
type SellerInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// SellerService coordinates account management and the ownership cascade.
type SellerService struct {
	sellers    repository.SellerRepository
	bcryptCost int
	logger     *zap.Logger
}

// NewSellerService builds the service.
func NewSellerService(sellers repository.SellerRepository, bcryptCost int, logger *zap.Logger) *SellerService {
	return &SellerService{sellers: sellers, bcryptCost: bcryptCost, logger: logger}
}

// Create registers a new seller. The email pre-check gives a friendly error,
// but the unique constraint decides races.
func (s *SellerService) Create(ctx context.Context, in SellerInput) (*domain.Seller, error) {
	if _, err := s.sellers.GetByEmail(ctx, in.Email); err == nil {
		return nil, apperrors.NewConflict("seller with this email already exists", map[string]any{"e_mail": in.Email})
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	seller := &domain.Seller{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
		Books:        []domain.Book{},
	}
	if err := s.sellers.Create(ctx, seller); err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewConflict("seller with this email already exists", map[string]any{"e_mail": in.Email})
		}
		return nil, apperrors.MapError(err)
	}

	s.logger.Info("seller created", zap.Int64("seller_id", seller.ID))
	return seller, nil
}

// Get returns a seller with its owned books.
func (s *SellerService) Get(ctx context.Context, id int64) (*domain.Seller, error) {
	seller, err := s.sellers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("seller", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return seller, nil
}

// List returns every seller with nested books.
func (s *SellerService) List(ctx context.Context) ([]domain.Seller, error) {
	sellers, err := s.sellers.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return sellers, nil
}

// Update replaces all mutable seller fields in place.
func (s *SellerService) Update(ctx context.Context, id int64, in SellerInput) (*domain.Seller, error) {
	seller, err := s.sellers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("seller", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}

	if seller.Email != in.Email {
		if other, err := s.sellers.GetByEmail(ctx, in.Email); err == nil && other.ID != id {
			return nil, apperrors.NewConflict("email already in use by another seller", map[string]any{"e_mail": in.Email})
		} else if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.MapError(err)
		}
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	seller.FirstName = in.FirstName
	seller.LastName = in.LastName
	seller.Email = in.Email
	seller.PasswordHash = hash

	if err := s.sellers.Update(ctx, seller); err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, apperrors.NewNotFound("seller", map[string]any{"id": id})
		case isUniqueViolation(err):
			return nil, apperrors.NewConflict("email already in use by another seller", map[string]any{"e_mail": in.Email})
		default:
			return nil, apperrors.MapError(err)
		}
	}

	s.logger.Info("seller updated", zap.Int64("seller_id", id))
	return seller, nil
}

// Delete removes the seller and cascades to its books atomically.
func (s *SellerService) Delete(ctx context.Context, id int64) error {
	if err := s.sellers.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("seller", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}
	s.logger.Info("seller deleted", zap.Int64("seller_id", id))
	return nil
}
