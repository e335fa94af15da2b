package domain

// DefaultPageCount is applied when a new listing omits count_pages.
const DefaultPageCount = 150

// Book is a catalog listing owned by exactly one seller.
type Book struct {
	ID       int64
	Title    string
	Author   string
	Year     int
	Pages    int
	SellerID int64
}
