package domain

// Seller is the domain model for a bookstore account that owns listings.
type Seller struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Books        []Book
}
