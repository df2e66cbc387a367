package entities

import (
	"time"

	"github.com/google/uuid"
)

// InvitationStatus represents the lifecycle state of an invitation
type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusRejected InvitationStatus = "rejected"
)

// IsValid checks if the invitation status is valid
func (s InvitationStatus) IsValid() bool {
	switch s {
	case InvitationStatusPending, InvitationStatusAccepted, InvitationStatusRejected:
		return true
	}
	return false
}

// Invitation represents an event owner inviting a user. Once accepted or
// rejected the record is terminal and must not transition again.
type Invitation struct {
	ID      uuid.UUID        `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	EventID uuid.UUID        `json:"event_id" gorm:"type:uuid;not null;index"`
	Event   *Event           `json:"event,omitempty" gorm:"foreignKey:EventID"`
	UserID  uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;index"`
	User    *User            `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Status  InvitationStatus `json:"status" gorm:"type:varchar(20);default:'pending';not null;index"`
	Message *string          `json:"message,omitempty" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Invitation
func (Invitation) TableName() string {
	return "invitations"
}

// IsPending checks if the invitation can still be processed
func (i *Invitation) IsPending() bool {
	return i.Status == InvitationStatusPending
}

// Accept marks the invitation as accepted
func (i *Invitation) Accept() error {
	if !i.IsPending() {
		return ErrInvitationProcessed
	}
	i.Status = InvitationStatusAccepted
	return nil
}

// Reject marks the invitation as rejected
func (i *Invitation) Reject() error {
	if !i.IsPending() {
		return ErrInvitationProcessed
	}
	i.Status = InvitationStatusRejected
	return nil
}
