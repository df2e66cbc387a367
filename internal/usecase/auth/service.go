package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/thien06012001/backend/internal/domain/entities"
)

// Service defines the authentication business logic interface
type Service interface {
	// Register creates a new account. A duplicate email is a conflict.
	Register(ctx context.Context, input RegisterInput) (*entities.User, error)

	// Login verifies credentials and issues an access/refresh token pair
	Login(ctx context.Context, email, password string) (*TokenPair, *entities.User, error)

	// Refresh exchanges a valid refresh token for a fresh pair
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)

	// Me returns the account behind an authenticated request
	Me(ctx context.Context, userID uuid.UUID) (*entities.User, error)
}

// TokenPair carries the issued access and refresh tokens
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}
