package entities

import (
	"time"

	"github.com/google/uuid"
)

// JoinRequestStatus represents the state of a join request
type JoinRequestStatus string

const (
	JoinRequestStatusPending JoinRequestStatus = "pending"
)

// JoinRequest is a user asking to join an event. Approval converts it into
// a participant row and deletes the request; rejection just deletes it.
type JoinRequest struct {
	ID      uuid.UUID         `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	EventID uuid.UUID         `json:"event_id" gorm:"type:uuid;not null;index"`
	Event   *Event            `json:"event,omitempty" gorm:"foreignKey:EventID"`
	UserID  uuid.UUID         `json:"user_id" gorm:"type:uuid;not null;index"`
	User    *User             `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Status  JoinRequestStatus `json:"status" gorm:"type:varchar(20);default:'pending';not null"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for JoinRequest
func (JoinRequest) TableName() string {
	return "requests"
}
