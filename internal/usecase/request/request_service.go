package request

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

// RequestService implements the Service interface
type RequestService struct {
	requestRepo      repositories.RequestRepository
	eventRepo        repositories.EventRepository
	participantRepo  repositories.ParticipantRepository
	notificationRepo repositories.NotificationRepository
	logger           *zap.Logger
}

var _ Service = (*RequestService)(nil)

// NewRequestService creates a new request service
func NewRequestService(
	requestRepo repositories.RequestRepository,
	eventRepo repositories.EventRepository,
	participantRepo repositories.ParticipantRepository,
	notificationRepo repositories.NotificationRepository,
	logger *zap.Logger,
) *RequestService {
	return &RequestService{
		requestRepo:      requestRepo,
		eventRepo:        eventRepo,
		participantRepo:  participantRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// GetEventRequests lists pending join requests of an event. Only the
// event owner may see them.
func (s *RequestService) GetEventRequests(ctx context.Context, eventID, callerID uuid.UUID) ([]*entities.JoinRequest, error) {
	event, err := s.findEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.OwnerID != callerID {
		return nil, apperrors.ErrPermissionDenied("view join requests")
	}
	return s.requestRepo.FindByEventID(ctx, eventID)
}

// CreateRequest files a join request. Existing participants cannot file
// one, and capacity is checked up front so hopeless requests are rejected
// immediately.
func (s *RequestService) CreateRequest(ctx context.Context, eventID, userID uuid.UUID) (*entities.JoinRequest, error) {
	event, err := s.findEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	joined, err := s.participantRepo.Exists(ctx, eventID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check participation: %w", err)
	}
	if joined {
		return nil, apperrors.ErrAlreadyExists("participant")
	}

	if event.Capacity > 0 {
		count, err := s.participantRepo.CountByEventID(ctx, eventID)
		if err != nil {
			return nil, fmt.Errorf("failed to count participants: %w", err)
		}
		if count >= int64(event.Capacity) {
			return nil, apperrors.ErrCapacityExceeded(event.Capacity)
		}
	}

	req := &entities.JoinRequest{
		EventID: eventID,
		UserID:  userID,
		Status:  entities.JoinRequestStatusPending,
	}
	if err := s.requestRepo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to create join request: %w", err)
	}
	return req, nil
}

// CancelRequest withdraws the caller's own pending request
func (s *RequestService) CancelRequest(ctx context.Context, eventID, userID uuid.UUID) error {
	if err := s.requestRepo.DeleteByEventAndUser(ctx, eventID, userID); err != nil {
		return fmt.Errorf("failed to cancel join request: %w", err)
	}
	return nil
}

// ApproveRequest converts the request into a participant row, deletes the
// request, and notifies the requester. Only the event owner may approve.
func (s *RequestService) ApproveRequest(ctx context.Context, requestID, callerID uuid.UUID) error {
	req, event, err := s.findOwnedRequest(ctx, requestID, callerID)
	if err != nil {
		return err
	}

	if err := s.participantRepo.Create(ctx, &entities.EventParticipant{
		EventID: req.EventID,
		UserID:  req.UserID,
	}); err != nil {
		return fmt.Errorf("failed to add participant: %w", err)
	}

	if err := s.requestRepo.DeleteByEventAndUser(ctx, req.EventID, req.UserID); err != nil {
		return fmt.Errorf("failed to delete join request: %w", err)
	}

	s.notifyRequester(ctx, event, req.UserID,
		entities.NotificationTitleRequestApproved,
		fmt.Sprintf("Your request to join %s has been approved", event.Name),
	)
	return nil
}

// RejectRequest deletes the request and notifies the requester. Only the
// event owner may reject.
func (s *RequestService) RejectRequest(ctx context.Context, requestID, callerID uuid.UUID) error {
	req, event, err := s.findOwnedRequest(ctx, requestID, callerID)
	if err != nil {
		return err
	}

	if err := s.requestRepo.DeleteByEventAndUser(ctx, req.EventID, req.UserID); err != nil {
		return fmt.Errorf("failed to delete join request: %w", err)
	}

	s.notifyRequester(ctx, event, req.UserID,
		entities.NotificationTitleRequestRejected,
		fmt.Sprintf("Your request to join %s has been rejected", event.Name),
	)
	return nil
}

func (s *RequestService) findEvent(ctx context.Context, eventID uuid.UUID) (*entities.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound("event")
		}
		return nil, fmt.Errorf("failed to find event: %w", err)
	}
	return event, nil
}

func (s *RequestService) findOwnedRequest(ctx context.Context, requestID, callerID uuid.UUID) (*entities.JoinRequest, *entities.Event, error) {
	req, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrNotFound("join request")
		}
		return nil, nil, fmt.Errorf("failed to find join request: %w", err)
	}

	event, err := s.findEvent(ctx, req.EventID)
	if err != nil {
		return nil, nil, err
	}
	if event.OwnerID != callerID {
		return nil, nil, apperrors.ErrPermissionDenied("manage join requests")
	}
	return req, event, nil
}

// notifyRequester is best effort: the approval or rejection stands even
// when the notification insert fails.
func (s *RequestService) notifyRequester(ctx context.Context, event *entities.Event, userID uuid.UUID, title, description string) {
	eventID := event.ID
	err := s.notificationRepo.Create(ctx, &entities.Notification{
		UserID:      userID,
		EventID:     &eventID,
		Title:       title,
		Description: description,
	})
	if err != nil {
		s.logger.Warn("failed to notify requester",
			zap.String("event_id", event.ID.String()),
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
	}
}
