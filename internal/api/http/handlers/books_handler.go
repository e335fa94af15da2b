package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bookstore-catalog/internal/api/dto"
	"github.com/spec-kit/bookstore-catalog/internal/domain"
	"github.com/spec-kit/bookstore-catalog/internal/service"
	"github.com/spec-kit/bookstore-catalog/internal/validation"
	apperrors "github.com/spec-kit/bookstore-catalog/pkg/util"
)

// BooksHandler exposes catalog endpoints.
type BooksHandler struct {
	books     *service.BookService
	validator *validation.Validator
}

// NewBooksHandler constructs handler.
func NewBooksHandler(books *service.BookService, validator *validation.Validator) *BooksHandler {
	return &BooksHandler{books: books, validator: validator}
}

// Create handles POST /books/.
func (h *BooksHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateBookRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.validator.ValidateNewBook(&req); err != nil {
		return err
	}

	pages := domain.DefaultPageCount
	if req.Pages != nil {
		pages = *req.Pages
	}

	book, err := h.books.Create(c.UserContext(), service.BookCreateInput{
		Title:    req.Title,
		Author:   req.Author,
		Year:     req.Year,
		Pages:    pages,
		SellerID: req.SellerID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(bookResponse(book))
}

// List handles GET /books/.
func (h *BooksHandler) List(c *fiber.Ctx) error {
	books, err := h.books.List(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.BookResponse, 0, len(books))
	for i := range books {
		items = append(items, bookResponse(&books[i]))
	}
	return c.JSON(dto.BookListResponse{Books: items})
}

// Get handles GET /books/:id.
func (h *BooksHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	book, err := h.books.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(bookResponse(book))
}

// Update handles PUT /books/:id.
func (h *BooksHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateBookRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.validator.ValidateBookUpdate(&req); err != nil {
		return err
	}

	book, err := h.books.Update(c.UserContext(), id, service.BookUpdateInput{
		Title:  req.Title,
		Author: req.Author,
		Year:   req.Year,
		Pages:  req.Pages,
	})
	if err != nil {
		return err
	}
	return c.JSON(bookResponse(book))
}

// Delete handles DELETE /books/:id.
func (h *BooksHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.books.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func bookResponse(book *domain.Book) dto.BookResponse {
	return dto.BookResponse{
		ID:       book.ID,
		Title:    book.Title,
		Author:   book.Author,
		Year:     book.Year,
		Pages:    book.Pages,
		SellerID: book.SellerID,
	}
}
