package event

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/thien06012001/backend/internal/domain/entities"
)

// SettingsProvider supplies the tenant configuration singleton. The event
// service loads it once per operation and threads it through as a value,
// never as ambient state.
type SettingsProvider interface {
	GetSettings(ctx context.Context) (*entities.Configuration, error)
}

// Service defines the interface for the event use case
type Service interface {
	// CreateEvent validates a candidate event against the admission rules
	// and persists it on success
	CreateEvent(ctx context.Context, input CreateEventInput) (*entities.Event, error)

	// GetEvent retrieves an event by ID
	GetEvent(ctx context.Context, eventID uuid.UUID) (*entities.Event, error)

	// ListPublicEvents retrieves all public events
	ListPublicEvents(ctx context.Context) ([]*entities.Event, error)

	// UpdateEvent updates an event's general fields and notifies every
	// current participant
	UpdateEvent(ctx context.Context, eventID uuid.UUID, input UpdateEventInput) (*entities.Event, error)

	// UpdateReminders updates the event's reminder offsets
	UpdateReminders(ctx context.Context, eventID uuid.UUID, participantReminder, invitationReminder int) (*entities.Event, error)

	// DeleteEvent deletes an event
	DeleteEvent(ctx context.Context, eventID uuid.UUID) error

	// LeaveEvent removes the calling user's participant row
	LeaveEvent(ctx context.Context, eventID, userID uuid.UUID) error

	// KickParticipant removes another user's participant row (owner action)
	KickParticipant(ctx context.Context, eventID, ownerID, userID uuid.UUID) error

	// GetParticipants retrieves the event's participants
	GetParticipants(ctx context.Context, eventID uuid.UUID) ([]*entities.EventParticipant, error)

	// RunReminderSweep scans future events and emits reminder
	// notifications for every event whose day offset matches one of its
	// configured thresholds. Returns the number of notifications emitted.
	RunReminderSweep(ctx context.Context, now time.Time) (int, error)
}

// Ensure EventService implements Service interface
var _ Service = (*EventService)(nil)
