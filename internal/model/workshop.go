// internal/model/workshop.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type WorkshopMode string

const (
	ModeOnline     WorkshopMode = "ONLINE"
	ModePresential WorkshopMode = "PRESENTIAL"
)

type Workshop struct {
	ID              uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title           string       `gorm:"type:text;not null" json:"title"`
	Description     string       `gorm:"type:text" json:"description"`
	Price           float64      `gorm:"type:numeric(10,2);not null;default:0" json:"price"`
	Mode            WorkshopMode `gorm:"type:text;not null;default:'ONLINE'" json:"mode"`
	StartsAt        time.Time    `gorm:"not null;index" json:"starts_at"`
	EndsAt          time.Time    `gorm:"not null" json:"ends_at"`
	MaxParticipants *int         `json:"max_participants"`
	OwnerID         uuid.UUID    `gorm:"type:uuid;not null;index" json:"owner_id"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`

	Owner       User         `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Enrollments []Enrollment `gorm:"foreignKey:WorkshopID" json:"enrollments,omitempty"`
}

// IsFree reports whether the workshop can be joined without a payment.
func (w *Workshop) IsFree() bool {
	return w.Price == 0
}

// HasStarted reports whether the workshop start has passed at the given instant.
func (w *Workshop) HasStarted(now time.Time) bool {
	return !w.StartsAt.After(now)
}
