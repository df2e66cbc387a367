package event

import "github.com/google/uuid"

// CreateEventRequest represents the request to create an event.
// Timestamps stay strings end to end so malformed values surface as a
// time-format rejection instead of a bind error.
type CreateEventRequest struct {
	Name                string  `json:"name" validate:"required,min=1,max=255"`
	Description         *string `json:"description,omitempty"`
	Location            string  `json:"location" validate:"required,min=1,max=255"`
	ImageURL            *string `json:"image_url,omitempty" validate:"omitempty,url"`
	IsPublic            *bool   `json:"is_public,omitempty"`
	Capacity            int     `json:"capacity" validate:"gte=0"`
	StartTime           string  `json:"start_time" validate:"required"`
	EndTime             string  `json:"end_time" validate:"required"`
	ParticipantReminder *int    `json:"participant_reminder,omitempty" validate:"omitempty,gte=0"`
	InvitationReminder  *int    `json:"invitation_reminder,omitempty" validate:"omitempty,gte=0"`
}

// UpdateEventRequest represents a partial event update
type UpdateEventRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty" validate:"omitempty,min=1,max=255"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,url"`
	IsPublic    *bool   `json:"is_public,omitempty"`
	Capacity    *int    `json:"capacity,omitempty" validate:"omitempty,gte=0"`
	StartTime   *string `json:"start_time,omitempty"`
	EndTime     *string `json:"end_time,omitempty"`
}

// UpdateRemindersRequest represents the request to change reminder offsets
type UpdateRemindersRequest struct {
	ParticipantReminder int `json:"participant_reminder" validate:"gte=0"`
	InvitationReminder  int `json:"invitation_reminder" validate:"gte=0"`
}

// InviteUserRequest represents the request to invite a single user
type InviteUserRequest struct {
	UserID  uuid.UUID `json:"user_id" validate:"required"`
	Message *string   `json:"message,omitempty"`
}

// InviteByEmailRequest represents the request to invite a user by email
type InviteByEmailRequest struct {
	Email   string  `json:"email" validate:"required,email"`
	Message *string `json:"message,omitempty"`
}

// BulkInviteRequest represents the request to invite several users
type BulkInviteRequest struct {
	UserIDs []uuid.UUID `json:"user_ids" validate:"required,min=1,dive,required"`
	Message *string     `json:"message,omitempty"`
}
