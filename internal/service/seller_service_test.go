package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/bookstore-catalog/internal/auth"
	"github.com/spec-kit/bookstore-catalog/internal/domain"
	apperrors "github.com/spec-kit/bookstore-catalog/pkg/util"
)

func newSellerFixture() (*SellerService, *memStore, *memSellerRepo) {
	store := newMemStore()
	repo := &memSellerRepo{store: store}
	return NewSellerService(repo, bcrypt.MinCost, zap.NewNop()), store, repo
}

func johnInput() SellerInput {
	return SellerInput{FirstName: "John", LastName: "Doe", Email: "j@example.com", Password: "password123"}
}

func domainCode(t *testing.T, err error) (*apperrors.DomainError, string) {
	t.Helper()
	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr), "expected DomainError, got %v", err)
	return domainErr, domainErr.Code
}

func TestSellerCreateStoresHashNotPassword(t *testing.T) {
	svc, store, _ := newSellerFixture()

	seller, err := svc.Create(context.Background(), johnInput())
	require.NoError(t, err)
	require.NotZero(t, seller.ID)

	stored := store.sellers[seller.ID]
	assert.NotEqual(t, "password123", stored.PasswordHash)
	assert.NoError(t, auth.ComparePassword(stored.PasswordHash, "password123"))
}

func TestSellerCreateThenGetRoundTrip(t *testing.T) {
	svc, _, _ := newSellerFixture()

	created, err := svc.Create(context.Background(), johnInput())
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "John", got.FirstName)
	assert.Equal(t, "Doe", got.LastName)
	assert.Equal(t, "j@example.com", got.Email)
	assert.Empty(t, got.Books)
}

func TestSellerCreateDuplicateEmail(t *testing.T) {
	svc, store, _ := newSellerFixture()

	_, err := svc.Create(context.Background(), johnInput())
	require.NoError(t, err)

	in := johnInput()
	in.FirstName = "Jane"
	_, err = svc.Create(context.Background(), in)
	require.Error(t, err)

	domainErr, code := domainCode(t, err)
	assert.Equal(t, "CONFLICT", code)
	assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus)
	assert.Len(t, store.sellers, 1)
}

func TestSellerCreateLosingRaceMapsUniqueViolation(t *testing.T) {
	svc, _, repo := newSellerFixture()

	// pre-check sees no seller, the store still rejects the insert
	repo.createErr = uniqueViolation()
	_, err := svc.Create(context.Background(), johnInput())
	require.Error(t, err)

	_, code := domainCode(t, err)
	assert.Equal(t, "CONFLICT", code)
}

func TestSellerGetMissing(t *testing.T) {
	svc, _, _ := newSellerFixture()

	_, err := svc.Get(context.Background(), 42)
	require.Error(t, err)
	_, code := domainCode(t, err)
	assert.Equal(t, "NOT_FOUND", code)
}

func TestSellerUpdateReplacesFields(t *testing.T) {
	svc, store, _ := newSellerFixture()

	created, err := svc.Create(context.Background(), johnInput())
	require.NoError(t, err)
	oldHash := store.sellers[created.ID].PasswordHash

	updated, err := svc.Update(context.Background(), created.ID, SellerInput{
		FirstName: "Johnny",
		LastName:  "Doe",
		Email:     "johnny@example.com",
		Password:  "newpassword1",
	})
	require.NoError(t, err)
	assert.Equal(t, "Johnny", updated.FirstName)
	assert.Equal(t, "johnny@example.com", updated.Email)

	stored := store.sellers[created.ID]
	assert.NotEqual(t, oldHash, stored.PasswordHash)
	assert.NoError(t, auth.ComparePassword(stored.PasswordHash, "newpassword1"))
}

func TestSellerUpdateMissing(t *testing.T) {
	svc, _, _ := newSellerFixture()

	_, err := svc.Update(context.Background(), 42, johnInput())
	require.Error(t, err)
	_, code := domainCode(t, err)
	assert.Equal(t, "NOT_FOUND", code)
}

func TestSellerUpdateEmailCollision(t *testing.T) {
	svc, _, _ := newSellerFixture()

	first, err := svc.Create(context.Background(), johnInput())
	require.NoError(t, err)

	other := johnInput()
	other.Email = "jane@example.com"
	_, err = svc.Create(context.Background(), other)
	require.NoError(t, err)

	in := johnInput()
	in.Email = "jane@example.com"
	_, err = svc.Update(context.Background(), first.ID, in)
	require.Error(t, err)

	domainErr, code := domainCode(t, err)
	assert.Equal(t, "CONFLICT", code)
	assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus)
}

func TestSellerUpdateKeepingOwnEmail(t *testing.T) {
	svc, _, _ := newSellerFixture()

	created, err := svc.Create(context.Background(), johnInput())
	require.NoError(t, err)

	// same email on the same record is not a collision
	_, err = svc.Update(context.Background(), created.ID, johnInput())
	assert.NoError(t, err)
}

func TestSellerDeleteCascadesToBooks(t *testing.T) {
	store := newMemStore()
	sellerRepo := &memSellerRepo{store: store}
	bookRepo := &memBookRepo{store: store}
	sellerSvc := NewSellerService(sellerRepo, bcrypt.MinCost, zap.NewNop())
	bookSvc := NewBookService(bookRepo, sellerRepo, zap.NewNop())

	seller, err := sellerSvc.Create(context.Background(), johnInput())
	require.NoError(t, err)

	for _, title := range []string{"first", "second"} {
		_, err := bookSvc.Create(context.Background(), BookCreateInput{
			Title: title, Author: "a", Year: 2008, Pages: domain.DefaultPageCount, SellerID: seller.ID,
		})
		require.NoError(t, err)
	}

	require.NoError(t, sellerSvc.Delete(context.Background(), seller.ID))

	books, err := bookSvc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, books)
	assert.Empty(t, store.sellers)
}

func TestSellerDeleteMissing(t *testing.T) {
	svc, _, _ := newSellerFixture()

	err := svc.Delete(context.Background(), 42)
	require.Error(t, err)
	_, code := domainCode(t, err)
	assert.Equal(t, "NOT_FOUND", code)
}
