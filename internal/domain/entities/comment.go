package entities

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a reply on an event discussion post
type Comment struct {
	ID      uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Content string    `json:"content" gorm:"type:text;not null"`
	PostID  uuid.UUID `json:"post_id" gorm:"type:uuid;not null;index"`
	Post    *Post     `json:"post,omitempty" gorm:"foreignKey:PostID"`
	UserID  uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	User    *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
