package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/bookstore-catalog/internal/domain"
)

// SellerRepository defines persistence access for sellers and their owned
// books. Email uniqueness is enforced by the store's unique constraint;
// callers observe the violation as a pgconn error.
type SellerRepository interface {
	Create(ctx context.Context, seller *domain.Seller) error
	Update(ctx context.Context, seller *domain.Seller) error
	GetByID(ctx context.Context, id int64) (*domain.Seller, error)
	GetByEmail(ctx context.Context, email string) (*domain.Seller, error)
	List(ctx context.Context) ([]domain.Seller, error)
	Delete(ctx context.Context, id int64) error
}

type sellerRepository struct {
	pool *pgxpool.Pool
}

// NewSellerRepository returns a Postgres-backed implementation.
func NewSellerRepository(pool *pgxpool.Pool) SellerRepository {
	return &sellerRepository{pool: pool}
}

func (r *sellerRepository) Create(ctx context.Context, seller *domain.Seller) error {
	const query = `
        INSERT INTO sellers (first_name, last_name, e_mail, password_hash)
        VALUES ($1, $2, $3, $4)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		seller.FirstName,
		seller.LastName,
		seller.Email,
		seller.PasswordHash,
	).Scan(&seller.ID)
}

func (r *sellerRepository) Update(ctx context.Context, seller *domain.Seller) error {
	const query = `
        UPDATE sellers SET first_name=$1, last_name=$2, e_mail=$3, password_hash=$4
        WHERE id=$5`

	cmd, err := r.pool.Exec(ctx, query,
		seller.FirstName,
		seller.LastName,
		seller.Email,
		seller.PasswordHash,
		seller.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *sellerRepository) GetByID(ctx context.Context, id int64) (*domain.Seller, error) {
	const query = `
        SELECT id, first_name, last_name, e_mail, password_hash
        FROM sellers WHERE id=$1`

	var seller domain.Seller
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&seller.ID,
		&seller.FirstName,
		&seller.LastName,
		&seller.Email,
		&seller.PasswordHash,
	); err != nil {
		return nil, err
	}

	books, err := r.booksOf(ctx, seller.ID)
	if err != nil {
		return nil, err
	}
	seller.Books = books
	return &seller, nil
}

func (r *sellerRepository) GetByEmail(ctx context.Context, email string) (*domain.Seller, error) {
	const query = `
        SELECT id, first_name, last_name, e_mail, password_hash
        FROM sellers WHERE e_mail=$1`

	var seller domain.Seller
	if err := r.pool.QueryRow(ctx, query, email).Scan(
		&seller.ID,
		&seller.FirstName,
		&seller.LastName,
		&seller.Email,
		&seller.PasswordHash,
	); err != nil {
		return nil, err
	}
	return &seller, nil
}

func (r *sellerRepository) List(ctx context.Context) ([]domain.Seller, error) {
	const query = `
        SELECT id, first_name, last_name, e_mail, password_hash
        FROM sellers ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sellers := []domain.Seller{}
	index := map[int64]int{}
	for rows.Next() {
		var seller domain.Seller
		if err := rows.Scan(
			&seller.ID,
			&seller.FirstName,
			&seller.LastName,
			&seller.Email,
			&seller.PasswordHash,
		); err != nil {
			return nil, err
		}
		seller.Books = []domain.Book{}
		index[seller.ID] = len(sellers)
		sellers = append(sellers, seller)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	const booksQuery = `
        SELECT id, title, author, year, pages, seller_id
        FROM books_table ORDER BY id`

	bookRows, err := r.pool.Query(ctx, booksQuery)
	if err != nil {
		return nil, err
	}
	defer bookRows.Close()

	for bookRows.Next() {
		var book domain.Book
		if err := bookRows.Scan(
			&book.ID,
			&book.Title,
			&book.Author,
			&book.Year,
			&book.Pages,
			&book.SellerID,
		); err != nil {
			return nil, err
		}
		if pos, ok := index[book.SellerID]; ok {
			sellers[pos].Books = append(sellers[pos].Books, book)
		}
	}
	return sellers, bookRows.Err()
}

// Delete removes the seller and every book it owns in one transaction.
func (r *sellerRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `DELETE FROM books_table WHERE seller_id=$1`, id); err != nil {
		return err
	}

	cmd, err := tx.Exec(ctx, `DELETE FROM sellers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return tx.Commit(ctx)
}

func (r *sellerRepository) booksOf(ctx context.Context, sellerID int64) ([]domain.Book, error) {
	const query = `
        SELECT id, title, author, year, pages, seller_id
        FROM books_table WHERE seller_id=$1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, sellerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := []domain.Book{}
	for rows.Next() {
		var book domain.Book
		if err := rows.Scan(
			&book.ID,
			&book.Title,
			&book.Author,
			&book.Year,
			&book.Pages,
			&book.SellerID,
		); err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	return books, rows.Err()
}
