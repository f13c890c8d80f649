// internal/model/notification.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotifWorkshopEnrollment NotificationType = "workshop_enrollment"
	NotifWorkshopReminder   NotificationType = "workshop_reminder"
	NotifWorkshopCancelled  NotificationType = "workshop_cancelled"
	NotifWorkshopUpdated    NotificationType = "workshop_updated"
	NotifNewWorkshop        NotificationType = "new_workshop"
	NotifPaymentReceived    NotificationType = "payment_received"
	NotifRefundProcessed    NotificationType = "refund_processed"
	NotifNewMessage         NotificationType = "new_message"
	NotifNewReview          NotificationType = "new_review"
)

type NotificationStatus string

const (
	NotificationUnread   NotificationStatus = "UNREAD"
	NotificationRead     NotificationStatus = "READ"
	NotificationArchived NotificationStatus = "ARCHIVED"
)

type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityMedium NotificationPriority = "medium"
	PriorityHigh   NotificationPriority = "high"
)

type Notification struct {
	ID        uuid.UUID            `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID            `gorm:"type:uuid;not null;index" json:"user_id"`
	Type      NotificationType     `gorm:"type:text;not null" json:"type"`
	Status    NotificationStatus   `gorm:"type:text;not null;default:'UNREAD';index" json:"status"`
	Priority  NotificationPriority `gorm:"type:text;not null;default:'medium'" json:"priority"`
	Title     string               `gorm:"type:text;not null" json:"title"`
	Message   string               `gorm:"type:text;not null" json:"message"`
	Metadata  map[string]string    `gorm:"serializer:json" json:"metadata,omitempty"`
	ActionURL string               `gorm:"type:text" json:"action_url,omitempty"`
	EmailSent bool                 `gorm:"default:false" json:"email_sent"`
	PushSent  bool                 `gorm:"default:false" json:"push_sent"`
	CreatedAt time.Time            `gorm:"index" json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// NotificationPreferences holds the per-user channel toggles. One row per
// user, created lazily with defaults on first access.
type NotificationPreferences struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`

	EmailEnrollment bool `gorm:"default:true" json:"email_enrollment"`
	EmailReminders  bool `gorm:"default:true" json:"email_reminders"`
	EmailCancelled  bool `gorm:"default:true" json:"email_cancelled"`
	EmailPayments   bool `gorm:"default:true" json:"email_payments"`
	EmailMarketing  bool `gorm:"default:false" json:"email_marketing"`

	PushEnrollment bool `gorm:"default:true" json:"push_enrollment"`
	PushReminders  bool `gorm:"default:true" json:"push_reminders"`
	PushCancelled  bool `gorm:"default:true" json:"push_cancelled"`
	PushPayments   bool `gorm:"default:true" json:"push_payments"`
	PushMessages   bool `gorm:"default:true" json:"push_messages"`
	PushMarketing  bool `gorm:"default:false" json:"push_marketing"`

	InAppEnabled bool `gorm:"default:true" json:"in_app_enabled"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// DefaultPreferences returns the preference row created on first access.
func DefaultPreferences(userID uuid.UUID) *NotificationPreferences {
	return &NotificationPreferences{
		UserID:          userID,
		EmailEnrollment: true,
		EmailReminders:  true,
		EmailCancelled:  true,
		EmailPayments:   true,
		PushEnrollment:  true,
		PushReminders:   true,
		PushCancelled:   true,
		PushPayments:    true,
		PushMessages:    true,
		InAppEnabled:    true,
	}
}
