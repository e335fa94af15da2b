package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/bookstore-catalog/internal/domain"
	"github.com/spec-kit/bookstore-catalog/internal/repository"
	apperrors "github.com/spec-kit/bookstore-catalog/pkg/util"
)

// BookCreateInput carries validated fields for a new listing.
type BookCreateInput struct {
	Title    string
	Author   string
	Year     int
	Pages    int
	SellerID int64
}

// BookUpdateInput replaces mutable listing fields. The owning seller never
// changes on update.
type BookUpdateInput struct {
	Title  string
	Author string
	Year   int
	Pages  int
}

// BookService coordinates catalog operations.
type BookService struct {
	books   repository.BookRepository
	sellers repository.SellerRepository
	logger  *zap.Logger
}

// NewBookService builds the service.
func NewBookService(books repository.BookRepository, sellers repository.SellerRepository, logger *zap.Logger) *BookService {
	return &BookService{books: books, sellers: sellers, logger: logger}
}

// Create persists a listing for an existing seller. The pre-check reports a
// missing seller early; the foreign key decides races.
func (s *BookService) Create(ctx context.Context, in BookCreateInput) (*domain.Book, error) {
	if _, err := s.sellers.GetByID(ctx, in.SellerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("seller", map[string]any{"seller_id": in.SellerID})
		}
		return nil, apperrors.MapError(err)
	}

	book := &domain.Book{
		Title:    in.Title,
		Author:   in.Author,
		Year:     in.Year,
		Pages:    in.Pages,
		SellerID: in.SellerID,
	}
	if err := s.books.Create(ctx, book); err != nil {
		if isForeignKeyViolation(err) {
			return nil, apperrors.NewNotFound("seller", map[string]any{"seller_id": in.SellerID})
		}
		return nil, apperrors.MapError(err)
	}

	s.logger.Info("book created", zap.Int64("book_id", book.ID), zap.Int64("seller_id", book.SellerID))
	return book, nil
}

// Get returns a single listing.
func (s *BookService) Get(ctx context.Context, id int64) (*domain.Book, error) {
	book, err := s.books.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("book", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return book, nil
}

// List returns the whole catalog, unfiltered by owner.
func (s *BookService) List(ctx context.Context) ([]domain.Book, error) {
	books, err := s.books.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return books, nil
}

// Update replaces title, author, year and pages in place. Only existence is
// checked; the caller's identity is not matched against the owner.
func (s *BookService) Update(ctx context.Context, id int64, in BookUpdateInput) (*domain.Book, error) {
	book, err := s.books.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("book", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}

	book.Title = in.Title
	book.Author = in.Author
	book.Year = in.Year
	book.Pages = in.Pages

	if err := s.books.Update(ctx, book); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("book", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}

	s.logger.Info("book updated", zap.Int64("book_id", id))
	return book, nil
}

// Delete removes a single listing.
func (s *BookService) Delete(ctx context.Context, id int64) error {
	if err := s.books.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("book", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}
	s.logger.Info("book deleted", zap.Int64("book_id", id))
	return nil
}
