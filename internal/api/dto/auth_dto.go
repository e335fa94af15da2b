package dto

// TokenRequest carries seller credentials for token issuance.
type TokenRequest struct {
	Email    string `json:"e_mail" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is the standard bearer token envelope.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
