package event

import (
	"time"

	"github.com/google/uuid"
)

// EventResponse represents an event in responses
type EventResponse struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Description         *string   `json:"description,omitempty"`
	Location            string    `json:"location"`
	ImageURL            *string   `json:"image_url,omitempty"`
	OwnerID             uuid.UUID `json:"owner_id"`
	IsPublic            bool      `json:"is_public"`
	Capacity            int       `json:"capacity"`
	StartTime           time.Time `json:"start_time"`
	EndTime             time.Time `json:"end_time"`
	ParticipantReminder int       `json:"participant_reminder"`
	InvitationReminder  int       `json:"invitation_reminder"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// ParticipantResponse represents an event participant in responses
type ParticipantResponse struct {
	EventID  uuid.UUID `json:"event_id"`
	UserID   uuid.UUID `json:"user_id"`
	JoinedAt time.Time `json:"joined_at"`
	Name     string    `json:"name,omitempty"`
	Email    string    `json:"email,omitempty"`
}

// SweepResponse reports the outcome of a reminder sweep run
type SweepResponse struct {
	NotificationsSent int `json:"notifications_sent"`
}
