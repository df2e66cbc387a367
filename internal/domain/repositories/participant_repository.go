package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/thien06012001/backend/internal/domain/entities"
)

// ParticipantRepository defines the interface for participant data access
type ParticipantRepository interface {
	// Create creates a new participant record
	Create(ctx context.Context, participant *entities.EventParticipant) error

	// Delete removes the participant row for (event, user)
	Delete(ctx context.Context, eventID, userID uuid.UUID) error

	// FindByEventID retrieves all participants of an event
	FindByEventID(ctx context.Context, eventID uuid.UUID) ([]*entities.EventParticipant, error)

	// FindByUserID retrieves all participant records for a user
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.EventParticipant, error)

	// Exists checks whether a user participates in an event
	Exists(ctx context.Context, eventID, userID uuid.UUID) (bool, error)

	// CountByEventID counts participants of an event
	CountByEventID(ctx context.Context, eventID uuid.UUID) (int64, error)
}
