// internal/email/mailer/workshop.go
package mailer

import (
	"time"

	"github.com/skillsharehq/skillshare-hub/internal/email"
)

// WorkshopTemplateData contains data shared by the workshop-scenario emails
type WorkshopTemplateData struct {
	FirstName     string
	WorkshopTitle string
	StartsAt      string
	WorkshopURL   string
}

// SendEnrollmentConfirmation confirms a spot in a workshop
func SendEnrollmentConfirmation(s *email.Service, to, firstName, workshopTitle string, startsAt time.Time, workshopURL string) error {
	emailData := email.EmailData{
		To:           to,
		FromName:     fromName,
		Subject:      "You're enrolled in " + workshopTitle,
		TemplateName: "enrollment_confirmation",
		TemplateData: WorkshopTemplateData{
			FirstName:     firstName,
			WorkshopTitle: workshopTitle,
			StartsAt:      startsAt.Format("Monday, 2 January 2006 at 15:04 MST"),
			WorkshopURL:   workshopURL,
		},
	}

	return s.SendEmail(emailData)
}

// SendWorkshopReminder reminds an enrolled user of tomorrow's workshop
func SendWorkshopReminder(s *email.Service, to, firstName, workshopTitle string, startsAt time.Time, workshopURL string) error {
	emailData := email.EmailData{
		To:           to,
		FromName:     fromName,
		Subject:      "Reminder: " + workshopTitle + " starts tomorrow",
		TemplateName: "workshop_reminder",
		TemplateData: WorkshopTemplateData{
			FirstName:     firstName,
			WorkshopTitle: workshopTitle,
			StartsAt:      startsAt.Format("Monday, 2 January 2006 at 15:04 MST"),
			WorkshopURL:   workshopURL,
		},
	}

	return s.SendEmail(emailData)
}

// SendWorkshopCancelled informs an enrolled user that the workshop was called off
func SendWorkshopCancelled(s *email.Service, to, firstName, workshopTitle string, startsAt time.Time) error {
	emailData := email.EmailData{
		To:           to,
		FromName:     fromName,
		Subject:      workshopTitle + " has been cancelled",
		TemplateName: "workshop_cancelled",
		TemplateData: WorkshopTemplateData{
			FirstName:     firstName,
			WorkshopTitle: workshopTitle,
			StartsAt:      startsAt.Format("Monday, 2 January 2006 at 15:04 MST"),
		},
	}

	return s.SendEmail(emailData)
}
