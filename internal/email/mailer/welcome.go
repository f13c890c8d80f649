// internal/email/mailer/welcome.go
package mailer

import "github.com/skillsharehq/skillshare-hub/internal/email"

const fromName = "SkillShare Hub"

// WelcomeTemplateData contains data for the welcome email template
type WelcomeTemplateData struct {
	FirstName string
	BrowseURL string
}

// SendWelcomeEmail greets a freshly signed-up user
func SendWelcomeEmail(s *email.Service, to, firstName, browseURL string) error {
	emailData := email.EmailData{
		To:           to,
		FromName:     fromName,
		Subject:      "Welcome to SkillShare Hub!",
		TemplateName: "welcome",
		TemplateData: WelcomeTemplateData{
			FirstName: firstName,
			BrowseURL: browseURL,
		},
	}

	return s.SendEmail(emailData)
}
