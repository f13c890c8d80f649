// internal/email/mailer/notification.go
package mailer

import (
	"time"

	"github.com/skillsharehq/skillshare-hub/internal/email"
	"github.com/skillsharehq/skillshare-hub/internal/model"
)

// NotificationTemplateData contains data for the generic notification email
type NotificationTemplateData struct {
	FirstName string
	Title     string
	Message   string
	ActionURL string
}

// Sender adapts the email service to the notification service's mailer
// interface so tests can substitute it.
type Sender struct {
	svc *email.Service
}

func NewSender(svc *email.Service) *Sender {
	return &Sender{svc: svc}
}

// SendNotification delivers a notification by email. Workshop lifecycle
// notifications use their dedicated templates when the metadata carries the
// workshop context; everything else falls back to the generic template.
func (m *Sender) SendNotification(to, firstName string, notification *model.Notification) error {
	if title, startsAt, ok := workshopContext(notification); ok {
		switch notification.Type {
		case model.NotifWorkshopEnrollment:
			return SendEnrollmentConfirmation(m.svc, to, firstName, title, startsAt, notification.ActionURL)
		case model.NotifWorkshopReminder:
			return SendWorkshopReminder(m.svc, to, firstName, title, startsAt, notification.ActionURL)
		case model.NotifWorkshopCancelled:
			return SendWorkshopCancelled(m.svc, to, firstName, title, startsAt)
		}
	}

	emailData := email.EmailData{
		To:           to,
		FromName:     fromName,
		Subject:      notification.Title,
		TemplateName: "notification",
		TemplateData: NotificationTemplateData{
			FirstName: firstName,
			Title:     notification.Title,
			Message:   notification.Message,
			ActionURL: notification.ActionURL,
		},
	}

	return m.svc.SendEmail(emailData)
}

func workshopContext(notification *model.Notification) (string, time.Time, bool) {
	title := notification.Metadata["workshop_title"]
	if title == "" {
		return "", time.Time{}, false
	}

	startsAt, err := time.Parse(time.RFC3339, notification.Metadata["starts_at"])
	if err != nil {
		return "", time.Time{}, false
	}

	return title, startsAt, true
}
