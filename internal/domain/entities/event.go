package entities

import (
	"time"

	"github.com/google/uuid"
)

// DefaultReminderOffset is the fallback reminder offset in days when the
// tenant configuration does not provide one.
const DefaultReminderOffset = 2

// Event represents a scheduled event owned by a user
type Event struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null"`
	Description *string   `json:"description,omitempty" gorm:"type:text"`
	Location    string    `json:"location" gorm:"type:varchar(255);not null"`
	ImageURL    *string   `json:"image_url,omitempty" gorm:"type:varchar(500)"`
	OwnerID     uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index"`
	Owner       *User     `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	IsPublic    bool      `json:"is_public" gorm:"default:true;not null"`
	Capacity    int       `json:"capacity" gorm:"default:0;check:capacity >= 0"`
	StartTime   time.Time `json:"start_time" gorm:"column:start_time;not null;index"`
	EndTime     time.Time `json:"end_time" gorm:"column:end_time;not null"`

	// Reminder offsets in whole days before start_time
	ParticipantReminder int `json:"participant_reminder" gorm:"default:2;check:participant_reminder >= 0"`
	InvitationReminder  int `json:"invitation_reminder" gorm:"default:2;check:invitation_reminder >= 0"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Event
func (Event) TableName() string {
	return "events"
}

// IsUpcoming checks if the event has not started yet
func (e *Event) IsUpcoming(now time.Time) bool {
	return e.StartTime.After(now)
}

// IsActiveAt reports whether the event still counts against the owner's
// active-event limit: either endpoint at or after the reference time.
func (e *Event) IsActiveAt(now time.Time) bool {
	return !e.StartTime.Before(now) || !e.EndTime.Before(now)
}

// DaysUntilStart returns the whole-day offset between now and the event
// start, comparing calendar dates only. Time-of-day is discarded on both
// sides, so an event can be "1 day away" whether it starts in 2 hours or
// in 26, as long as exactly one midnight boundary is crossed.
func (e *Event) DaysUntilStart(now time.Time) int {
	return int(civilDateUTC(e.StartTime).Sub(civilDateUTC(now)).Hours() / 24)
}

// civilDateUTC projects a timestamp's calendar date into UTC. Subtracting
// two projected dates always yields an exact multiple of 24h, so the day
// arithmetic is immune to DST transitions and mixed zone offsets.
func civilDateUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CivilDayFloor truncates a timestamp to its calendar date, keeping the
// timestamp's own location.
func CivilDayFloor(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
