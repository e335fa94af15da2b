package dto

// CreateBookRequest is the body for new listings. count_pages defaults to
// 150 when omitted.
type CreateBookRequest struct {
	Title    string `json:"title" validate:"required"`
	Author   string `json:"author" validate:"required"`
	Year     int    `json:"year" validate:"required"`
	Pages    *int   `json:"count_pages" validate:"omitempty,gt=0"`
	SellerID int64  `json:"seller_id" validate:"required"`
}

// UpdateBookRequest replaces all mutable book fields. The owning seller is
// never changed by an update.
type UpdateBookRequest struct {
	Title  string `json:"title" validate:"required"`
	Author string `json:"author" validate:"required"`
	Year   int    `json:"year" validate:"required"`
	Pages  int    `json:"pages" validate:"required,gt=0"`
}

// BookResponse is the public projection of a listing.
type BookResponse struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Year     int    `json:"year"`
	Pages    int    `json:"pages"`
	SellerID int64  `json:"seller_id"`
}

// BookListResponse wraps the full catalog listing.
type BookListResponse struct {
	Books []BookResponse `json:"books"`
}
