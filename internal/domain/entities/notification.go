package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Notification titles used by the event flows. The reminder sweep and the
// update fan-out match on these exact strings.
const (
	NotificationTitleEventReminder      = "Event Reminder"
	NotificationTitlePendingInvitation  = "Pending Invitation Reminder"
	NotificationTitleEventUpdated       = "Event Updated"
	NotificationTitleRequestApproved    = "Join Request Approved"
	NotificationTitleRequestRejected    = "Join Request Rejected"
	NotificationTitleInvitationReceived = "Event Invitation"
)

// Notification is an append-only record delivered to a single user
type Notification struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;index"`
	User        *User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
	EventID     *uuid.UUID     `json:"event_id,omitempty" gorm:"type:uuid;index"`
	Title       string         `json:"title" gorm:"type:varchar(255);not null"`
	Description string         `json:"description" gorm:"type:text;not null"`
	IsRead      bool           `json:"is_read" gorm:"default:false;not null;index"`
	Metadata    datatypes.JSON `json:"metadata,omitempty" gorm:"type:jsonb;default:'{}'"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
