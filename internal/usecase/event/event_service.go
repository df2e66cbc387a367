package event

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "github.com/thien06012001/backend/errors"
	"github.com/thien06012001/backend/internal/domain/entities"
	"github.com/thien06012001/backend/internal/domain/repositories"
)

// EventService handles event business logic
type EventService struct {
	eventRepo        repositories.EventRepository
	participantRepo  repositories.ParticipantRepository
	invitationRepo   repositories.InvitationRepository
	notificationRepo repositories.NotificationRepository
	settings         SettingsProvider
	logger           *zap.Logger

	// now is swapped out in tests
	now func() time.Time
}

// NewEventService creates a new event service
func NewEventService(
	eventRepo repositories.EventRepository,
	participantRepo repositories.ParticipantRepository,
	invitationRepo repositories.InvitationRepository,
	notificationRepo repositories.NotificationRepository,
	settings SettingsProvider,
	logger *zap.Logger,
) *EventService {
	return &EventService{
		eventRepo:        eventRepo,
		participantRepo:  participantRepo,
		invitationRepo:   invitationRepo,
		notificationRepo: notificationRepo,
		settings:         settings,
		logger:           logger,
		now:              time.Now,
	}
}

// CreateEventInput represents input for creating an event. Timestamps
// arrive as strings so malformed values can be rejected before any other
// admission rule runs.
type CreateEventInput struct {
	Name                string
	Description         *string
	Location            string
	ImageURL            *string
	OwnerID             uuid.UUID
	IsPublic            bool
	Capacity            int
	StartTime           string
	EndTime             string
	ParticipantReminder *int
	InvitationReminder  *int
}

// CreateEvent validates the candidate against the admission rules and
// persists it. Validation fails fast: the first violated rule wins.
func (s *EventService) CreateEvent(ctx context.Context, input CreateEventInput) (*entities.Event, error) {
	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, entities.ErrConfigurationMissing) {
			return nil, apperrors.ErrConfigurationMissing()
		}
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	now := s.now()

	start, end, err := validateEventWindow(input.StartTime, input.EndTime, now)
	if err != nil {
		return nil, err
	}

	// Active/future events of the owner, counted with the inclusive-OR
	// window: started-but-unfinished events still occupy a slot.
	active, err := s.eventRepo.FindActiveByOwner(ctx, input.OwnerID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to count active events: %w", err)
	}
	if len(active) >= settings.MaxActiveEvents {
		return nil, apperrors.ErrActiveEventLimitExceeded(settings.MaxActiveEvents)
	}

	if input.Capacity > settings.MaxEventCapacity {
		return nil, apperrors.ErrCapacityExceeded(settings.MaxEventCapacity)
	}

	event := &entities.Event{
		Name:                input.Name,
		Description:         input.Description,
		Location:            input.Location,
		ImageURL:            input.ImageURL,
		OwnerID:             input.OwnerID,
		IsPublic:            input.IsPublic,
		Capacity:            input.Capacity,
		StartTime:           start,
		EndTime:             end,
		ParticipantReminder: settings.ParticipantReminderOrDefault(),
		InvitationReminder:  settings.InvitationReminderOrDefault(),
	}
	if input.ParticipantReminder != nil {
		event.ParticipantReminder = *input.ParticipantReminder
	}
	if input.InvitationReminder != nil {
		event.InvitationReminder = *input.InvitationReminder
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return event, nil
}

// validateEventWindow applies the time-ordering admission rules in order:
// parseability, start in the future, end after start.
func validateEventWindow(startRaw, endRaw string, now time.Time) (time.Time, time.Time, error) {
	start, err := time.Parse(time.RFC3339, startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.ErrInvalidTimeFormat("start_time")
	}
	end, err := time.Parse(time.RFC3339, endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.ErrInvalidTimeFormat("end_time")
	}
	if !start.After(now) {
		return time.Time{}, time.Time{}, apperrors.ErrStartNotInFuture()
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, apperrors.ErrEndBeforeStart()
	}
	return start, end, nil
}

// GetEvent retrieves an event by ID
func (s *EventService) GetEvent(ctx context.Context, eventID uuid.UUID) (*entities.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound("Event")
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

// ListPublicEvents retrieves all public events
func (s *EventService) ListPublicEvents(ctx context.Context) ([]*entities.Event, error) {
	events, err := s.eventRepo.FindAllPublic(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// UpdateEventInput represents input for updating an event's general fields
type UpdateEventInput struct {
	Name        *string
	Description *string
	Location    *string
	ImageURL    *string
	IsPublic    *bool
	Capacity    *int
	StartTime   *string
	EndTime     *string
}

// UpdateEvent updates general event fields. Updates are always permitted
// and are not re-validated against the admission rules. Every current
// participant receives an "Event Updated" notification.
func (s *EventService) UpdateEvent(ctx context.Context, eventID uuid.UUID, input UpdateEventInput) (*entities.Event, error) {
	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		event.Name = *input.Name
	}
	if input.Description != nil {
		event.Description = input.Description
	}
	if input.Location != nil {
		event.Location = *input.Location
	}
	if input.ImageURL != nil {
		event.ImageURL = input.ImageURL
	}
	if input.IsPublic != nil {
		event.IsPublic = *input.IsPublic
	}
	if input.Capacity != nil {
		event.Capacity = *input.Capacity
	}
	if input.StartTime != nil {
		start, err := time.Parse(time.RFC3339, *input.StartTime)
		if err != nil {
			return nil, apperrors.ErrInvalidTimeFormat("start_time")
		}
		event.StartTime = start
	}
	if input.EndTime != nil {
		end, err := time.Parse(time.RFC3339, *input.EndTime)
		if err != nil {
			return nil, apperrors.ErrInvalidTimeFormat("end_time")
		}
		event.EndTime = end
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	if err := s.notifyParticipants(ctx, event, entities.NotificationTitleEventUpdated,
		fmt.Sprintf("The event %q has been updated by its organizer", event.Name)); err != nil {
		// The update itself succeeded; a failed fan-out is logged, not
		// surfaced to the caller.
		s.logger.Warn("event update notification fan-out failed",
			zap.String("event_id", event.ID.String()),
			zap.Error(err),
		)
	}

	return event, nil
}

// UpdateReminders updates the event's reminder offsets
func (s *EventService) UpdateReminders(ctx context.Context, eventID uuid.UUID, participantReminder, invitationReminder int) (*entities.Event, error) {
	if participantReminder < 0 || invitationReminder < 0 {
		return nil, apperrors.ErrInvalidArgument("reminder offsets must be non-negative")
	}

	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	event.ParticipantReminder = participantReminder
	event.InvitationReminder = invitationReminder

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to update reminders: %w", err)
	}
	return event, nil
}

// DeleteEvent deletes an event
func (s *EventService) DeleteEvent(ctx context.Context, eventID uuid.UUID) error {
	if _, err := s.GetEvent(ctx, eventID); err != nil {
		return err
	}
	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// LeaveEvent removes the calling user's participant row
func (s *EventService) LeaveEvent(ctx context.Context, eventID, userID uuid.UUID) error {
	exists, err := s.participantRepo.Exists(ctx, eventID, userID)
	if err != nil {
		return fmt.Errorf("failed to check participation: %w", err)
	}
	if !exists {
		return apperrors.ErrNotFound("Participant")
	}
	if err := s.participantRepo.Delete(ctx, eventID, userID); err != nil {
		return fmt.Errorf("failed to leave event: %w", err)
	}
	return nil
}

// KickParticipant removes another user's participant row. Only the event
// owner may kick.
func (s *EventService) KickParticipant(ctx context.Context, eventID, ownerID, userID uuid.UUID) error {
	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}
	if event.OwnerID != ownerID {
		return apperrors.ErrPermissionDenied("kick participant")
	}
	return s.LeaveEvent(ctx, eventID, userID)
}

// GetParticipants retrieves the event's participants
func (s *EventService) GetParticipants(ctx context.Context, eventID uuid.UUID) ([]*entities.EventParticipant, error) {
	if _, err := s.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}
	return s.participantRepo.FindByEventID(ctx, eventID)
}

// notifyParticipants emits one notification per current participant
func (s *EventService) notifyParticipants(ctx context.Context, event *entities.Event, title, description string) error {
	participants, err := s.participantRepo.FindByEventID(ctx, event.ID)
	if err != nil {
		return fmt.Errorf("failed to load participants: %w", err)
	}

	notifications := make([]*entities.Notification, 0, len(participants))
	for _, p := range participants {
		eventID := event.ID
		notifications = append(notifications, &entities.Notification{
			UserID:      p.UserID,
			EventID:     &eventID,
			Title:       title,
			Description: description,
		})
	}
	return s.notificationRepo.CreateBatch(ctx, notifications)
}
