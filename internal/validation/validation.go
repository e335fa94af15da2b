// Package validation holds the pure payload rules: field presence, email
// shape, password length and the configured publication-year window. It runs
// before any persistence call and reports every offending field in a single
// structured error.
package validation

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/spec-kit/bookstore-catalog/internal/api/dto"
	"github.com/spec-kit/bookstore-catalog/internal/config"
	apperrors "github.com/spec-kit/bookstore-catalog/pkg/util"
)

// Validator applies record validation rules for incoming payloads.
type Validator struct {
	validate     *validator.Validate
	yearMin      int
	yearMaxAhead int
}

// New builds a Validator with the configured year window.
func New(cfg config.CatalogConfig) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their json names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return &Validator{
		validate:     v,
		yearMin:      cfg.BookYearMin,
		yearMaxAhead: cfg.BookYearMaxAhead,
	}
}

// YearWindow returns the accepted publication-year bounds for the current
// moment.
func (v *Validator) YearWindow() (int, int) {
	return v.yearMin, time.Now().Year() + v.yearMaxAhead
}

// ValidateSeller checks a seller payload for creation or update.
func (v *Validator) ValidateSeller(payload *dto.SellerPayload) error {
	details := v.structDetails(payload)
	if len(details) > 0 {
		return apperrors.NewValidationError("seller payload invalid", details)
	}
	return nil
}

// ValidateNewBook checks a listing payload. Seller existence is decided by
// the store, not here.
func (v *Validator) ValidateNewBook(payload *dto.CreateBookRequest) error {
	details := v.structDetails(payload)
	v.checkYear(payload.Year, details)
	if len(details) > 0 {
		return apperrors.NewValidationError("book payload invalid", details)
	}
	return nil
}

// ValidateBookUpdate checks a full-replacement book payload.
func (v *Validator) ValidateBookUpdate(payload *dto.UpdateBookRequest) error {
	details := v.structDetails(payload)
	v.checkYear(payload.Year, details)
	if len(details) > 0 {
		return apperrors.NewValidationError("book payload invalid", details)
	}
	return nil
}

// ValidateTokenRequest checks a credentials payload.
func (v *Validator) ValidateTokenRequest(payload *dto.TokenRequest) error {
	details := v.structDetails(payload)
	if len(details) > 0 {
		return apperrors.NewValidationError("credentials payload invalid", details)
	}
	return nil
}

func (v *Validator) checkYear(year int, details map[string]any) {
	if _, seen := details["year"]; seen {
		return
	}
	minYear, maxYear := v.YearWindow()
	if year < minYear || year > maxYear {
		details["year"] = fmt.Sprintf("must be between %d and %d", minYear, maxYear)
	}
}

func (v *Validator) structDetails(payload any) map[string]any {
	details := map[string]any{}
	err := v.validate.Struct(payload)
	if err == nil {
		return details
	}
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		details["payload"] = "invalid"
		return details
	}
	for _, fieldErr := range validationErrs {
		details[fieldErr.Field()] = fieldMessage(fieldErr)
	}
	return details
}

func fieldMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", fieldErr.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fieldErr.Param())
	default:
		return fmt.Sprintf("failed %s validation", fieldErr.Tag())
	}
}
