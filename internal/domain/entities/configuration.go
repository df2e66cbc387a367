package entities

import (
	"time"

	"github.com/google/uuid"
)

// Configuration is the tenant-wide settings singleton. Exactly one live
// row exists; the admission checks and event-creation defaults read it on
// every operation instead of holding ambient global state.
type Configuration struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MaxActiveEvents  int       `json:"max_active_events" gorm:"default:5;not null"`
	MaxEventCapacity int       `json:"max_event_capacity" gorm:"default:100;not null"`

	DefaultParticipantReminder int `json:"default_participant_reminder" gorm:"default:2;not null"`
	DefaultInvitationReminder  int `json:"default_invitation_reminder" gorm:"default:2;not null"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Configuration
func (Configuration) TableName() string {
	return "configurations"
}

// ParticipantReminderOrDefault returns the configured default participant
// reminder offset, falling back to the built-in default when unset.
func (c *Configuration) ParticipantReminderOrDefault() int {
	if c.DefaultParticipantReminder > 0 {
		return c.DefaultParticipantReminder
	}
	return DefaultReminderOffset
}

// InvitationReminderOrDefault returns the configured default invitation
// reminder offset, falling back to the built-in default when unset.
func (c *Configuration) InvitationReminderOrDefault() int {
	if c.DefaultInvitationReminder > 0 {
		return c.DefaultInvitationReminder
	}
	return DefaultReminderOffset
}
