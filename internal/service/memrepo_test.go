package service

import (
	"context"
	"sort"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/bookstore-catalog/internal/domain"
)

// In-memory stand-ins for the Postgres repositories. They mirror the store
// contract the services rely on: pgx.ErrNoRows for absent rows, pgconn
// errors for constraint violations, cascade on seller delete.

func uniqueViolation() *pgconn.PgError {
	return &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "sellers_e_mail_key"}
}

func fkViolation() *pgconn.PgError {
	return &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "books_table_seller_id_fkey"}
}

type memStore struct {
	nextSellerID int64
	nextBookID   int64
	sellers      map[int64]domain.Seller
	books        map[int64]domain.Book
}

func newMemStore() *memStore {
	return &memStore{
		sellers: map[int64]domain.Seller{},
		books:   map[int64]domain.Book{},
	}
}

func (s *memStore) booksOf(sellerID int64) []domain.Book {
	books := []domain.Book{}
	for _, book := range s.books {
		if book.SellerID == sellerID {
			books = append(books, book)
		}
	}
	sort.Slice(books, func(i, j int) bool { return books[i].ID < books[j].ID })
	return books
}

type memSellerRepo struct {
	store *memStore

	// when set, the next Create fails with this error
	createErr error
}

func (r *memSellerRepo) Create(_ context.Context, seller *domain.Seller) error {
	if r.createErr != nil {
		err := r.createErr
		r.createErr = nil
		return err
	}
	for _, existing := range r.store.sellers {
		if existing.Email == seller.Email {
			return uniqueViolation()
		}
	}
	r.store.nextSellerID++
	seller.ID = r.store.nextSellerID
	r.store.sellers[seller.ID] = *seller
	return nil
}

func (r *memSellerRepo) Update(_ context.Context, seller *domain.Seller) error {
	if _, ok := r.store.sellers[seller.ID]; !ok {
		return pgx.ErrNoRows
	}
	for _, existing := range r.store.sellers {
		if existing.Email == seller.Email && existing.ID != seller.ID {
			return uniqueViolation()
		}
	}
	r.store.sellers[seller.ID] = *seller
	return nil
}

func (r *memSellerRepo) GetByID(_ context.Context, id int64) (*domain.Seller, error) {
	seller, ok := r.store.sellers[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	seller.Books = r.store.booksOf(id)
	return &seller, nil
}

func (r *memSellerRepo) GetByEmail(_ context.Context, email string) (*domain.Seller, error) {
	for _, seller := range r.store.sellers {
		if seller.Email == email {
			found := seller
			return &found, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memSellerRepo) List(_ context.Context) ([]domain.Seller, error) {
	sellers := []domain.Seller{}
	for _, seller := range r.store.sellers {
		seller.Books = r.store.booksOf(seller.ID)
		sellers = append(sellers, seller)
	}
	sort.Slice(sellers, func(i, j int) bool { return sellers[i].ID < sellers[j].ID })
	return sellers, nil
}

func (r *memSellerRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.store.sellers[id]; !ok {
		return pgx.ErrNoRows
	}
	for bookID, book := range r.store.books {
		if book.SellerID == id {
			delete(r.store.books, bookID)
		}
	}
	delete(r.store.sellers, id)
	return nil
}

type memBookRepo struct {
	store *memStore

	// when set, the next Create fails with this error
	createErr error
}

func (r *memBookRepo) Create(_ context.Context, book *domain.Book) error {
	if r.createErr != nil {
		err := r.createErr
		r.createErr = nil
		return err
	}
	if _, ok := r.store.sellers[book.SellerID]; !ok {
		return fkViolation()
	}
	r.store.nextBookID++
	book.ID = r.store.nextBookID
	r.store.books[book.ID] = *book
	return nil
}

func (r *memBookRepo) Update(_ context.Context, book *domain.Book) error {
	if _, ok := r.store.books[book.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.store.books[book.ID] = *book
	return nil
}

func (r *memBookRepo) GetByID(_ context.Context, id int64) (*domain.Book, error) {
	book, ok := r.store.books[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &book, nil
}

func (r *memBookRepo) List(_ context.Context) ([]domain.Book, error) {
	books := []domain.Book{}
	for _, book := range r.store.books {
		books = append(books, book)
	}
	sort.Slice(books, func(i, j int) bool { return books[i].ID < books[j].ID })
	return books, nil
}

func (r *memBookRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.store.books[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.store.books, id)
	return nil
}
