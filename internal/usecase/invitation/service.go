package invitation

import (
	"context"

	"github.com/google/uuid"

	"github.com/thien06012001/backend/internal/domain/entities"
)

// Service defines the invitation business logic interface
type Service interface {
	// GetInvitation retrieves a single invitation by ID
	GetInvitation(ctx context.Context, id uuid.UUID) (*entities.Invitation, error)

	// GetEventInvitations lists all invitations of an event, owner only
	GetEventInvitations(ctx context.Context, eventID, callerID uuid.UUID) ([]*entities.Invitation, error)

	// GetUserInvitations lists all invitations targeting a user
	GetUserInvitations(ctx context.Context, userID uuid.UUID) ([]*entities.Invitation, error)

	// CreateInvitation invites a user to an event and notifies them
	CreateInvitation(ctx context.Context, input CreateInvitationInput) (*entities.Invitation, error)

	// SendInvitationByEmail resolves the invitee by email, then invites them
	SendInvitationByEmail(ctx context.Context, input SendInvitationInput) (*entities.Invitation, error)

	// CreateBulkInvitations invites several users in one call
	CreateBulkInvitations(ctx context.Context, input BulkInvitationInput) ([]*entities.Invitation, error)

	// AcceptInvitation accepts a pending invitation and joins the event
	AcceptInvitation(ctx context.Context, id, callerID uuid.UUID) (*entities.Invitation, error)

	// RejectInvitation rejects a pending invitation
	RejectInvitation(ctx context.Context, id, callerID uuid.UUID) (*entities.Invitation, error)

	// DeleteInvitation withdraws an invitation, owner only
	DeleteInvitation(ctx context.Context, id, callerID uuid.UUID) error
}
