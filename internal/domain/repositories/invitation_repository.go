package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/thien06012001/backend/internal/domain/entities"
)

// InvitationRepository defines the interface for invitation data access
type InvitationRepository interface {
	// Create creates a new invitation
	Create(ctx context.Context, invitation *entities.Invitation) error

	// CreateBatch creates multiple invitations at once
	CreateBatch(ctx context.Context, invitations []*entities.Invitation) error

	// FindByID retrieves an invitation by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Invitation, error)

	// FindByEventID retrieves all invitations for an event
	FindByEventID(ctx context.Context, eventID uuid.UUID) ([]*entities.Invitation, error)

	// FindPendingByEventID retrieves the event's invitations still pending
	FindPendingByEventID(ctx context.Context, eventID uuid.UUID) ([]*entities.Invitation, error)

	// FindByUserID retrieves all invitations targeting a user
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Invitation, error)

	// UpdateStatus updates the status of an invitation
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.InvitationStatus) error

	// Delete deletes an invitation
	Delete(ctx context.Context, id uuid.UUID) error
}
