package auth

// RegisterRequest represents the request to create an account
type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Username string  `json:"username" validate:"required,min=3,max=100"`
	Name     string  `json:"name" validate:"required,min=1,max=255"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest represents the request to log in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest represents the request to refresh access token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}
