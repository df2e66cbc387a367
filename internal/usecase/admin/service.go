package admin

import (
	"context"

	"github.com/google/uuid"

	"github.com/thien06012001/backend/internal/domain/entities"
)

// Service defines the admin business logic interface. Every operation
// here assumes the caller already passed the admin role check in the
// middleware.
type Service interface {
	// ListUsers retrieves every account
	ListUsers(ctx context.Context) ([]*entities.User, error)

	// DeleteUser removes any account
	DeleteUser(ctx context.Context, id uuid.UUID) error

	// ListEvents retrieves every event regardless of visibility
	ListEvents(ctx context.Context) ([]*entities.Event, error)

	// DeleteEvent removes any event
	DeleteEvent(ctx context.Context, id uuid.UUID) error
}
