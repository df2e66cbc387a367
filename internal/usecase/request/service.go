package request

import (
	"context"

	"github.com/google/uuid"

	"github.com/thien06012001/backend/internal/domain/entities"
)

// Service defines the join request business logic interface
type Service interface {
	// GetEventRequests lists pending join requests of an event, owner only
	GetEventRequests(ctx context.Context, eventID, callerID uuid.UUID) ([]*entities.JoinRequest, error)

	// CreateRequest files a join request for an event
	CreateRequest(ctx context.Context, eventID, userID uuid.UUID) (*entities.JoinRequest, error)

	// CancelRequest withdraws the caller's own pending request
	CancelRequest(ctx context.Context, eventID, userID uuid.UUID) error

	// ApproveRequest turns a request into a participant row and notifies
	// the requester, owner only
	ApproveRequest(ctx context.Context, requestID, callerID uuid.UUID) error

	// RejectRequest deletes a request and notifies the requester, owner only
	RejectRequest(ctx context.Context, requestID, callerID uuid.UUID) error
}
