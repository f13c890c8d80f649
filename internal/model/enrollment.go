// internal/model/enrollment.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Enrollment links a user to a workshop. The composite unique index is the
// storage-level guard against duplicate enrollments racing past the service
// checks.
type Enrollment struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	WorkshopID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_workshop_user" json:"workshop_id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_workshop_user" json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`

	Workshop Workshop `gorm:"foreignKey:WorkshopID" json:"workshop,omitempty"`
	User     User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
