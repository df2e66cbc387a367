package entities

import (
	"time"

	"github.com/google/uuid"
)

// EventParticipant is the join record between an event and a user. At most
// one row exists per (event_id, user_id).
type EventParticipant struct {
	ID      uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	EventID uuid.UUID `json:"event_id" gorm:"type:uuid;not null;uniqueIndex:idx_event_user"`
	Event   *Event    `json:"event,omitempty" gorm:"foreignKey:EventID"`
	UserID  uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_event_user"`
	User    *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for EventParticipant
func (EventParticipant) TableName() string {
	return "event_participants"
}
