package setting

// UpdateSettingsRequest represents the request to change tenant limits
// and defaults. Nil fields are left unchanged.
type UpdateSettingsRequest struct {
	MaxActiveEvents            *int `json:"max_active_events,omitempty" validate:"omitempty,gte=1"`
	MaxEventCapacity           *int `json:"max_event_capacity,omitempty" validate:"omitempty,gte=1"`
	DefaultParticipantReminder *int `json:"default_participant_reminder,omitempty" validate:"omitempty,gte=0"`
	DefaultInvitationReminder  *int `json:"default_invitation_reminder,omitempty" validate:"omitempty,gte=0"`
}
