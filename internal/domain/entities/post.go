package entities

import (
	"time"

	"github.com/google/uuid"
)

// Post is a discussion thread attached to an event
type Post struct {
	ID      uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title   string    `json:"title" gorm:"type:varchar(255);not null"`
	Content string    `json:"content" gorm:"type:text;not null"`
	EventID uuid.UUID `json:"event_id" gorm:"type:uuid;not null;index"`
	Event   *Event    `json:"event,omitempty" gorm:"foreignKey:EventID"`
	UserID  uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	User    *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`

	Comments []*Comment `json:"comments,omitempty" gorm:"foreignKey:PostID"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Post
func (Post) TableName() string {
	return "posts"
}
