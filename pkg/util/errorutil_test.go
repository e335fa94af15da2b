package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainErrorPassthrough(t *testing.T) {
	conflict := NewConflict("seller with this email already exists", nil)
	mapped := ToDomainError(fmt.Errorf("create seller: %w", conflict))

	assert.Equal(t, "CONFLICT", mapped.Code)
	assert.Equal(t, http.StatusBadRequest, mapped.HTTPStatus)
}

func TestToDomainErrorNoRows(t *testing.T) {
	mapped := ToDomainError(pgx.ErrNoRows)
	assert.Equal(t, "NOT_FOUND", mapped.Code)
	assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
}

func TestToDomainErrorGenericIsInternal(t *testing.T) {
	mapped := ToDomainError(errors.New("connection reset"))
	assert.Equal(t, "INTERNAL_ERROR", mapped.Code)
	assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
	// internal detail stays wrapped, not in the message shown to callers
	assert.Equal(t, "internal server error", mapped.Message)
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		err        error
		wantCode   string
		wantStatus int
	}{
		{NewValidationError("bad payload", nil), "VALIDATION_FAILED", http.StatusUnprocessableEntity},
		{NewConflict("dup", nil), "CONFLICT", http.StatusBadRequest},
		{NewNotFound("seller", nil), "NOT_FOUND", http.StatusNotFound},
		{NewUnauthorized("nope"), "UNAUTHORIZED", http.StatusUnauthorized},
		{NewInternalError(errors.New("boom")), "INTERNAL_ERROR", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		var domainErr *DomainError
		require.True(t, errors.As(tt.err, &domainErr))
		assert.Equal(t, tt.wantCode, domainErr.Code)
		assert.Equal(t, tt.wantStatus, domainErr.HTTPStatus)
	}
}
