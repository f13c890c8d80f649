// internal/model/chat.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type MessageType string

const (
	MessageText  MessageType = "text"
	MessageImage MessageType = "image"
	MessageFile  MessageType = "file"
)

type ChatMessage struct {
	ID            uuid.UUID   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	WorkshopID    uuid.UUID   `gorm:"type:uuid;not null;index" json:"workshop_id"`
	UserID        uuid.UUID   `gorm:"type:uuid;not null" json:"user_id"`
	Message       string      `gorm:"type:text;not null" json:"message"`
	Type          MessageType `gorm:"type:text;not null;default:'text'" json:"type"`
	AttachmentURL string      `gorm:"type:text" json:"attachment_url,omitempty"`
	IsEdited      bool        `gorm:"default:false" json:"is_edited"`
	IsDeleted     bool        `gorm:"default:false;index" json:"is_deleted"`
	EditedAt      *time.Time  `json:"edited_at"`
	CreatedAt     time.Time   `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`

	Workshop Workshop `gorm:"foreignKey:WorkshopID" json:"-"`
	User     User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// ChatRead tracks how far a user has read a workshop chat. Unread counts are
// messages created after LastReadAt by other users.
type ChatRead struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	WorkshopID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_chat_read" json:"workshop_id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_chat_read" json:"user_id"`
	LastReadAt time.Time `gorm:"not null" json:"last_read_at"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
