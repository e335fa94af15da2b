package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/bookstore-catalog/internal/domain"
)

// BookRepository encapsulates listing persistence. Referential integrity to
// the owning seller is enforced by the store's foreign key.
type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) error
	Update(ctx context.Context, book *domain.Book) error
	GetByID(ctx context.Context, id int64) (*domain.Book, error)
	List(ctx context.Context) ([]domain.Book, error)
	Delete(ctx context.Context, id int64) error
}

type bookRepository struct {
	pool *pgxpool.Pool
}

// NewBookRepository returns a Postgres-backed implementation.
func NewBookRepository(pool *pgxpool.Pool) BookRepository {
	return &bookRepository{pool: pool}
}

func (r *bookRepository) Create(ctx context.Context, book *domain.Book) error {
	const query = `
        INSERT INTO books_table (title, author, year, pages, seller_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		book.Title,
		book.Author,
		book.Year,
		book.Pages,
		book.SellerID,
	).Scan(&book.ID)
}

func (r *bookRepository) Update(ctx context.Context, book *domain.Book) error {
	const query = `
        UPDATE books_table SET title=$1, author=$2, year=$3, pages=$4
        WHERE id=$5`

	cmd, err := r.pool.Exec(ctx, query,
		book.Title,
		book.Author,
		book.Year,
		book.Pages,
		book.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *bookRepository) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	const query = `
        SELECT id, title, author, year, pages, seller_id
        FROM books_table WHERE id=$1`

	var book domain.Book
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&book.ID,
		&book.Title,
		&book.Author,
		&book.Year,
		&book.Pages,
		&book.SellerID,
	); err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *bookRepository) List(ctx context.Context) ([]domain.Book, error) {
	const query = `
        SELECT id, title, author, year, pages, seller_id
        FROM books_table ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
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

func (r *bookRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM books_table WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
