package invitation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "github.com/thien06012001/backend/errors"
	"github.com/thien06012001/backend/internal/domain/entities"
	"github.com/thien06012001/backend/internal/domain/repositories"
)

// InvitationService implements the Service interface
type InvitationService struct {
	invitationRepo   repositories.InvitationRepository
	eventRepo        repositories.EventRepository
	userRepo         repositories.UserRepository
	participantRepo  repositories.ParticipantRepository
	notificationRepo repositories.NotificationRepository
	logger           *zap.Logger
}

var _ Service = (*InvitationService)(nil)

// NewInvitationService creates a new invitation service
func NewInvitationService(
	invitationRepo repositories.InvitationRepository,
	eventRepo repositories.EventRepository,
	userRepo repositories.UserRepository,
	participantRepo repositories.ParticipantRepository,
	notificationRepo repositories.NotificationRepository,
	logger *zap.Logger,
) *InvitationService {
	return &InvitationService{
		invitationRepo:   invitationRepo,
		eventRepo:        eventRepo,
		userRepo:         userRepo,
		participantRepo:  participantRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// GetInvitation retrieves a single invitation by ID
func (s *InvitationService) GetInvitation(ctx context.Context, id uuid.UUID) (*entities.Invitation, error) {
	inv, err := s.invitationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound("invitation")
		}
		return nil, fmt.Errorf("failed to find invitation: %w", err)
	}
	return inv, nil
}

// GetEventInvitations lists all invitations of an event. Only the event
// owner may see them.
func (s *InvitationService) GetEventInvitations(ctx context.Context, eventID, callerID uuid.UUID) ([]*entities.Invitation, error) {
	event, err := s.findEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.OwnerID != callerID {
		return nil, apperrors.ErrPermissionDenied("view event invitations")
	}
	return s.invitationRepo.FindByEventID(ctx, eventID)
}

// GetUserInvitations lists all invitations targeting a user
func (s *InvitationService) GetUserInvitations(ctx context.Context, userID uuid.UUID) ([]*entities.Invitation, error) {
	return s.invitationRepo.FindByUserID(ctx, userID)
}

// CreateInvitationInput represents input for inviting a user to an event
type CreateInvitationInput struct {
	EventID  uuid.UUID
	UserID   uuid.UUID
	CallerID uuid.UUID
	Message  *string
}

// CreateInvitation invites a user to an event and drops an "Event
// Invitation" notification in their inbox. Only the event owner may
// invite; inviting an existing participant is rejected.
func (s *InvitationService) CreateInvitation(ctx context.Context, input CreateInvitationInput) (*entities.Invitation, error) {
	event, err := s.findEvent(ctx, input.EventID)
	if err != nil {
		return nil, err
	}
	if event.OwnerID != input.CallerID {
		return nil, apperrors.ErrPermissionDenied("invite users to this event")
	}

	if _, err := s.userRepo.FindByID(ctx, input.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound("user")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	joined, err := s.participantRepo.Exists(ctx, input.EventID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check participation: %w", err)
	}
	if joined {
		return nil, apperrors.ErrAlreadyExists("participant")
	}

	inv := &entities.Invitation{
		EventID: input.EventID,
		UserID:  input.UserID,
		Status:  entities.InvitationStatusPending,
		Message: input.Message,
	}
	if err := s.invitationRepo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	s.notifyInvitee(ctx, event, input.UserID)

	return inv, nil
}

// SendInvitationInput represents input for inviting a user by email
type SendInvitationInput struct {
	EventID  uuid.UUID
	Email    string
	CallerID uuid.UUID
	Message  *string
}

// SendInvitationByEmail resolves the invitee by email first and then
// follows the same path as CreateInvitation.
func (s *InvitationService) SendInvitationByEmail(ctx context.Context, input SendInvitationInput) (*entities.Invitation, error) {
	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound("user")
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	return s.CreateInvitation(ctx, CreateInvitationInput{
		EventID:  input.EventID,
		UserID:   user.ID,
		CallerID: input.CallerID,
		Message:  input.Message,
	})
}

// BulkInvitationInput represents input for inviting several users at once
type BulkInvitationInput struct {
	EventID  uuid.UUID
	UserIDs  []uuid.UUID
	CallerID uuid.UUID
	Message  *string
}

// CreateBulkInvitations invites several users in one batch insert. Users
// that are already participants are skipped rather than failing the batch.
func (s *InvitationService) CreateBulkInvitations(ctx context.Context, input BulkInvitationInput) ([]*entities.Invitation, error) {
	event, err := s.findEvent(ctx, input.EventID)
	if err != nil {
		return nil, err
	}
	if event.OwnerID != input.CallerID {
		return nil, apperrors.ErrPermissionDenied("invite users to this event")
	}

	invitations := make([]*entities.Invitation, 0, len(input.UserIDs))
	for _, userID := range input.UserIDs {
		if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrNotFound("user")
			}
			return nil, fmt.Errorf("failed to find user: %w", err)
		}
		joined, err := s.participantRepo.Exists(ctx, input.EventID, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to check participation: %w", err)
		}
		if joined {
			s.logger.Debug("skipping invitation for existing participant",
				zap.String("event_id", input.EventID.String()),
				zap.String("user_id", userID.String()),
			)
			continue
		}
		invitations = append(invitations, &entities.Invitation{
			EventID: input.EventID,
			UserID:  userID,
			Status:  entities.InvitationStatusPending,
			Message: input.Message,
		})
	}

	if len(invitations) == 0 {
		return invitations, nil
	}
	if err := s.invitationRepo.CreateBatch(ctx, invitations); err != nil {
		return nil, fmt.Errorf("failed to create invitations: %w", err)
	}

	for _, inv := range invitations {
		s.notifyInvitee(ctx, event, inv.UserID)
	}

	return invitations, nil
}

// AcceptInvitation accepts a pending invitation, converts it into a
// participant row, and leaves the record terminally accepted. A second
// attempt on the same invitation is rejected.
func (s *InvitationService) AcceptInvitation(ctx context.Context, id, callerID uuid.UUID) (*entities.Invitation, error) {
	inv, err := s.GetInvitation(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv.UserID != callerID {
		return nil, apperrors.ErrPermissionDenied("respond to this invitation")
	}
	if err := inv.Accept(); err != nil {
		return nil, apperrors.ErrInvitationProcessed(id.String())
	}

	if err := s.participantRepo.Create(ctx, &entities.EventParticipant{
		EventID: inv.EventID,
		UserID:  inv.UserID,
	}); err != nil {
		return nil, fmt.Errorf("failed to join event: %w", err)
	}

	if err := s.invitationRepo.UpdateStatus(ctx, id, entities.InvitationStatusAccepted); err != nil {
		return nil, fmt.Errorf("failed to update invitation: %w", err)
	}

	return inv, nil
}

// RejectInvitation rejects a pending invitation, leaving it terminally
// rejected.
func (s *InvitationService) RejectInvitation(ctx context.Context, id, callerID uuid.UUID) (*entities.Invitation, error) {
	inv, err := s.GetInvitation(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv.UserID != callerID {
		return nil, apperrors.ErrPermissionDenied("respond to this invitation")
	}
	if err := inv.Reject(); err != nil {
		return nil, apperrors.ErrInvitationProcessed(id.String())
	}

	if err := s.invitationRepo.UpdateStatus(ctx, id, entities.InvitationStatusRejected); err != nil {
		return nil, fmt.Errorf("failed to update invitation: %w", err)
	}

	return inv, nil
}

// DeleteInvitation withdraws an invitation. Only the event owner may do
// this.
func (s *InvitationService) DeleteInvitation(ctx context.Context, id, callerID uuid.UUID) error {
	inv, err := s.GetInvitation(ctx, id)
	if err != nil {
		return err
	}

	event, err := s.findEvent(ctx, inv.EventID)
	if err != nil {
		return err
	}
	if event.OwnerID != callerID {
		return apperrors.ErrPermissionDenied("withdraw this invitation")
	}

	return s.invitationRepo.Delete(ctx, id)
}

func (s *InvitationService) findEvent(ctx context.Context, eventID uuid.UUID) (*entities.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound("event")
		}
		return nil, fmt.Errorf("failed to find event: %w", err)
	}
	return event, nil
}

// notifyInvitee is best effort: a failed notification never unwinds a
// created invitation.
func (s *InvitationService) notifyInvitee(ctx context.Context, event *entities.Event, userID uuid.UUID) {
	eventID := event.ID
	err := s.notificationRepo.Create(ctx, &entities.Notification{
		UserID:      userID,
		EventID:     &eventID,
		Title:       entities.NotificationTitleInvitationReceived,
		Description: fmt.Sprintf("You have been invited to %s", event.Name),
	})
	if err != nil {
		s.logger.Warn("failed to notify invitee",
			zap.String("event_id", event.ID.String()),
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
	}
}
