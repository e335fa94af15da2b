package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bookstore-catalog/internal/api/dto"
	"github.com/spec-kit/bookstore-catalog/internal/domain"
	"github.com/spec-kit/bookstore-catalog/internal/service"
	"github.com/spec-kit/bookstore-catalog/internal/validation"
	apperrors "github.com/spec-kit/bookstore-catalog/pkg/util"
)

// SellersHandler exposes seller account endpoints.
type SellersHandler struct {
	sellers   *service.SellerService
	validator *validation.Validator
}

// NewSellersHandler constructs handler.
func NewSellersHandler(sellers *service.SellerService, validator *validation.Validator) *SellersHandler {
	return &SellersHandler{sellers: sellers, validator: validator}
}

// Create handles POST /sellers/.
func (h *SellersHandler) Create(c *fiber.Ctx) error {
	var req dto.SellerPayload
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.validator.ValidateSeller(&req); err != nil {
		return err
	}

	seller, err := h.sellers.Create(c.UserContext(), service.SellerInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(sellerResponse(seller))
}

// List handles GET /sellers/.
func (h *SellersHandler) List(c *fiber.Ctx) error {
	sellers, err := h.sellers.List(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.SellerResponse, 0, len(sellers))
	for i := range sellers {
		items = append(items, sellerResponse(&sellers[i]))
	}
	return c.JSON(items)
}

// Get handles GET /sellers/:id.
func (h *SellersHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	seller, err := h.sellers.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(sellerResponse(seller))
}

// Update handles PUT /sellers/:id.
func (h *SellersHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.SellerPayload
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.validator.ValidateSeller(&req); err != nil {
		return err
	}

	seller, err := h.sellers.Update(c.UserContext(), id, service.SellerInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(sellerResponse(seller))
}

// Delete handles DELETE /sellers/:id.
func (h *SellersHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.sellers.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func sellerResponse(seller *domain.Seller) dto.SellerResponse {
	books := make([]dto.BookResponse, 0, len(seller.Books))
	for i := range seller.Books {
		books = append(books, bookResponse(&seller.Books[i]))
	}
	return dto.SellerResponse{
		ID:        seller.ID,
		FirstName: seller.FirstName,
		LastName:  seller.LastName,
		Email:     seller.Email,
		Books:     books,
	}
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError("invalid id", map[string]any{"id": "must be an integer"})
	}
	return id, nil
}
