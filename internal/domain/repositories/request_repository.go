package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/thien06012001/backend/internal/domain/entities"
)

// RequestRepository defines the interface for join request data access
type RequestRepository interface {
	// Create creates a new join request
	Create(ctx context.Context, request *entities.JoinRequest) error

	// FindByID retrieves a join request by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.JoinRequest, error)

	// FindByEventID retrieves all join requests for an event
	FindByEventID(ctx context.Context, eventID uuid.UUID) ([]*entities.JoinRequest, error)

	// DeleteByEventAndUser removes the request a user made for an event
	DeleteByEventAndUser(ctx context.Context, eventID, userID uuid.UUID) error
}
