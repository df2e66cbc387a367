package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/thien06012001/backend/internal/domain/entities"
)

// EventRepository defines the interface for event data access
type EventRepository interface {
	// Create creates a new event
	Create(ctx context.Context, event *entities.Event) error

	// FindByID retrieves an event by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Event, error)

	// Update updates an existing event
	Update(ctx context.Context, event *entities.Event) error

	// Delete deletes an event
	Delete(ctx context.Context, id uuid.UUID) error

	// FindAllPublic retrieves all public events
	FindAllPublic(ctx context.Context) ([]*entities.Event, error)

	// FindAll retrieves every event regardless of visibility
	FindAll(ctx context.Context) ([]*entities.Event, error)

	// FindByOwnerID retrieves all events owned by a user
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entities.Event, error)

	// FindJoinedByUserID retrieves events the user participates in
	FindJoinedByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Event, error)

	// FindActiveByOwner retrieves the owner's events whose start_time or
	// end_time is still at or after now. Events that have started but not
	// ended count; this window drives the admission limit.
	FindActiveByOwner(ctx context.Context, ownerID uuid.UUID, now time.Time) ([]*entities.Event, error)

	// FindFutureEvents retrieves events with start_time strictly after now.
	// This is the reminder sweep's window and deliberately narrower than
	// FindActiveByOwner.
	FindFutureEvents(ctx context.Context, now time.Time) ([]*entities.Event, error)
}
