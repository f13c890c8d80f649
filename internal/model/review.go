// internal/model/review.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	WorkshopID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_workshop_reviewer" json:"workshop_id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_workshop_reviewer" json:"user_id"`
	Rating     int       `gorm:"not null" json:"rating"`
	Comment    string    `gorm:"type:text" json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Workshop Workshop `gorm:"foreignKey:WorkshopID" json:"-"`
	User     User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
