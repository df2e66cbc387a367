package user

import (
	"context"

	"github.com/google/uuid"

	"github.com/thien06012001/backend/internal/domain/entities"
)

// Service defines the user business logic interface
type Service interface {
	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, id uuid.UUID) (*entities.User, error)

	// ListUsers retrieves all users
	ListUsers(ctx context.Context) ([]*entities.User, error)

	// UpdateUser applies a partial profile update. A new password is
	// re-hashed before storage.
	UpdateUser(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*entities.User, error)

	// DeleteUser removes a user account
	DeleteUser(ctx context.Context, id uuid.UUID) error

	// GetOwnedEvents lists events the user owns
	GetOwnedEvents(ctx context.Context, userID uuid.UUID) ([]*entities.Event, error)

	// GetJoinedEvents lists events the user participates in
	GetJoinedEvents(ctx context.Context, userID uuid.UUID) ([]*entities.Event, error)
}
