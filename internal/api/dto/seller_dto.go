package dto

// SellerPayload is the body for seller creation and update. The password is
// accepted on write only and never serialized back.
type SellerPayload struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"e_mail" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
}

// SellerResponse is the public projection of a seller with nested books.
type SellerResponse struct {
	ID        int64          `json:"id"`
	FirstName string         `json:"first_name"`
	LastName  string         `json:"last_name"`
	Email     string         `json:"e_mail"`
	Books     []BookResponse `json:"books"`
}
