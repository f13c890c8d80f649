// internal/service/notification.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/skillsharehq/skillshare-hub/internal/domain"
	"github.com/skillsharehq/skillshare-hub/internal/event"
	"github.com/skillsharehq/skillshare-hub/internal/model"
	"github.com/skillsharehq/skillshare-hub/internal/repository"
)

// NotificationMailer sends a notification over the email channel. Satisfied
// by mailer.Sender, which picks the template from the notification type.
type NotificationMailer interface {
	SendNotification(to, firstName string, notification *model.Notification) error
}

// emailPrefFor and pushPrefFor map each notification type to the preference
// field that gates its channel. A type missing from a table means the
// channel is never used for it.
var emailPrefFor = map[model.NotificationType]func(*model.NotificationPreferences) bool{
	model.NotifWorkshopEnrollment: func(p *model.NotificationPreferences) bool { return p.EmailEnrollment },
	model.NotifWorkshopReminder:   func(p *model.NotificationPreferences) bool { return p.EmailReminders },
	model.NotifWorkshopCancelled:  func(p *model.NotificationPreferences) bool { return p.EmailCancelled },
	model.NotifWorkshopUpdated:    func(p *model.NotificationPreferences) bool { return p.EmailReminders },
	model.NotifNewWorkshop:        func(p *model.NotificationPreferences) bool { return p.EmailMarketing },
	model.NotifPaymentReceived:    func(p *model.NotificationPreferences) bool { return p.EmailPayments },
	model.NotifRefundProcessed:    func(p *model.NotificationPreferences) bool { return p.EmailPayments },
}

var pushPrefFor = map[model.NotificationType]func(*model.NotificationPreferences) bool{
	model.NotifWorkshopEnrollment: func(p *model.NotificationPreferences) bool { return p.PushEnrollment },
	model.NotifWorkshopReminder:   func(p *model.NotificationPreferences) bool { return p.PushReminders },
	model.NotifWorkshopCancelled:  func(p *model.NotificationPreferences) bool { return p.PushCancelled },
	model.NotifWorkshopUpdated:    func(p *model.NotificationPreferences) bool { return p.PushReminders },
	model.NotifNewWorkshop:        func(p *model.NotificationPreferences) bool { return p.PushMarketing },
	model.NotifPaymentReceived:    func(p *model.NotificationPreferences) bool { return p.PushPayments },
	model.NotifRefundProcessed:    func(p *model.NotificationPreferences) bool { return p.PushPayments },
	model.NotifNewMessage:         func(p *model.NotificationPreferences) bool { return p.PushMessages },
	model.NotifNewReview:          func(p *model.NotificationPreferences) bool { return p.PushMessages },
}

// NotificationCreated is the payload of event.TopicNotificationCreated.
type NotificationCreated struct {
	Notification *model.Notification
	Push         bool
}

// AllRead is the payload of event.TopicNotificationAllRead.
type AllRead struct {
	UserID uuid.UUID
}

type NotificationService struct {
	repo     repository.NotificationRepositoryIface
	userRepo repository.UserRepositoryIface
	mailer   NotificationMailer
	bus      *event.Bus
	validate *validator.Validate
}

func NewNotificationService(
	repo repository.NotificationRepositoryIface,
	userRepo repository.UserRepositoryIface,
	mailer NotificationMailer,
	bus *event.Bus,
) *NotificationService {
	return &NotificationService{
		repo:     repo,
		userRepo: userRepo,
		mailer:   mailer,
		bus:      bus,
		validate: validator.New(),
	}
}

type CreateNotificationInput struct {
	UserID    uuid.UUID                  `validate:"required"`
	Type      model.NotificationType     `validate:"required"`
	Title     string                     `validate:"required"`
	Message   string                     `validate:"required"`
	Priority  model.NotificationPriority
	Metadata  map[string]string
	ActionURL string
	SendEmail bool
	SendPush  bool
}

// Create persists a notification for an existing user and fans it out to
// the email and push channels allowed by the user's preferences.
func (s *NotificationService) Create(ctx context.Context, input CreateNotificationInput) (*model.Notification, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	notification := &model.Notification{
		UserID:    input.UserID,
		Type:      input.Type,
		Status:    model.NotificationUnread,
		Priority:  priority,
		Title:     input.Title,
		Message:   input.Message,
		Metadata:  input.Metadata,
		ActionURL: input.ActionURL,
	}

	if err := s.repo.Create(ctx, notification); err != nil {
		return nil, fmt.Errorf("creating notification: %w", err)
	}

	prefs, err := s.Preferences(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("loading preferences: %w", err)
	}

	if input.SendEmail && s.mailer != nil {
		if allowed, ok := emailPrefFor[input.Type]; ok && allowed(prefs) {
			if err := s.mailer.SendNotification(user.Email, user.FirstName, notification); err != nil {
				// Email delivery is best effort; the notification row exists either way.
				slog.Warn("sending notification email", "error", err, "user_id", user.ID)
			} else {
				notification.EmailSent = true
			}
		}
	}

	push := false
	if input.SendPush {
		if allowed, ok := pushPrefFor[input.Type]; ok && allowed(prefs) {
			push = true
			notification.PushSent = true
		}
	}

	if notification.EmailSent || notification.PushSent {
		if err := s.repo.Update(ctx, notification); err != nil {
			return nil, fmt.Errorf("updating delivery flags: %w", err)
		}
	}

	if s.bus != nil && prefs.InAppEnabled {
		s.bus.PublishAsync(event.Event{
			Topic:   event.TopicNotificationCreated,
			Payload: NotificationCreated{Notification: notification, Push: push},
		})
	}

	return notification, nil
}

// Convenience constructors fixing title/message/type/priority/channels per
// business scenario.

// workshopMetadata carries enough workshop context for the mailer to render
// a scenario-specific template.
func workshopMetadata(workshop *model.Workshop) map[string]string {
	return map[string]string{
		"workshop_id":    workshop.ID.String(),
		"workshop_title": workshop.Title,
		"starts_at":      workshop.StartsAt.Format(time.RFC3339),
	}
}

func (s *NotificationService) NotifyWorkshopEnrollment(ctx context.Context, userID uuid.UUID, workshop *model.Workshop) (*model.Notification, error) {
	return s.Create(ctx, CreateNotificationInput{
		UserID:    userID,
		Type:      model.NotifWorkshopEnrollment,
		Title:     "Enrollment confirmed",
		Message:   fmt.Sprintf("You are enrolled in %q starting %s.", workshop.Title, workshop.StartsAt.Format(time.RFC1123)),
		Priority:  model.PriorityHigh,
		Metadata:  workshopMetadata(workshop),
		ActionURL: "/workshops/" + workshop.ID.String(),
		SendEmail: true,
		SendPush:  true,
	})
}

func (s *NotificationService) NotifyWorkshopReminder(ctx context.Context, userID uuid.UUID, workshop *model.Workshop) (*model.Notification, error) {
	return s.Create(ctx, CreateNotificationInput{
		UserID:    userID,
		Type:      model.NotifWorkshopReminder,
		Title:     "Workshop starts tomorrow",
		Message:   fmt.Sprintf("%q starts %s. Don't miss it!", workshop.Title, workshop.StartsAt.Format(time.RFC1123)),
		Priority:  model.PriorityHigh,
		Metadata:  workshopMetadata(workshop),
		ActionURL: "/workshops/" + workshop.ID.String(),
		SendEmail: true,
		SendPush:  true,
	})
}

func (s *NotificationService) NotifyWorkshopCancelled(ctx context.Context, userID uuid.UUID, workshop *model.Workshop) (*model.Notification, error) {
	return s.Create(ctx, CreateNotificationInput{
		UserID:    userID,
		Type:      model.NotifWorkshopCancelled,
		Title:     "Workshop cancelled",
		Message:   fmt.Sprintf("%q scheduled for %s has been cancelled.", workshop.Title, workshop.StartsAt.Format(time.RFC1123)),
		Priority:  model.PriorityHigh,
		Metadata:  workshopMetadata(workshop),
		SendEmail: true,
		SendPush:  true,
	})
}

func (s *NotificationService) NotifyNewWorkshop(ctx context.Context, userID uuid.UUID, workshop *model.Workshop) (*model.Notification, error) {
	return s.Create(ctx, CreateNotificationInput{
		UserID:    userID,
		Type:      model.NotifNewWorkshop,
		Title:     "New workshop from an instructor you know",
		Message:   fmt.Sprintf("%q is open for enrollment, starting %s.", workshop.Title, workshop.StartsAt.Format(time.RFC1123)),
		Priority:  model.PriorityLow,
		Metadata:  map[string]string{"workshop_id": workshop.ID.String()},
		ActionURL: "/workshops/" + workshop.ID.String(),
		SendEmail: true,
		SendPush:  true,
	})
}

func (s *NotificationService) NotifyPaymentReceived(ctx context.Context, userID uuid.UUID, payment *model.Payment, workshop *model.Workshop) (*model.Notification, error) {
	return s.Create(ctx, CreateNotificationInput{
		UserID:    userID,
		Type:      model.NotifPaymentReceived,
		Title:     "Payment received",
		Message:   fmt.Sprintf("Your payment of %.2f for %q was processed.", payment.Amount, workshop.Title),
		Priority:  model.PriorityMedium,
		Metadata:  map[string]string{"payment_id": payment.ID.String(), "workshop_id": workshop.ID.String()},
		SendEmail: true,
		SendPush:  true,
	})
}

func (s *NotificationService) NotifyRefundProcessed(ctx context.Context, userID uuid.UUID, payment *model.Payment, workshop *model.Workshop) (*model.Notification, error) {
	return s.Create(ctx, CreateNotificationInput{
		UserID:    userID,
		Type:      model.NotifRefundProcessed,
		Title:     "Refund processed",
		Message:   fmt.Sprintf("Your payment of %.2f for %q was refunded.", payment.Amount, workshop.Title),
		Priority:  model.PriorityMedium,
		Metadata:  map[string]string{"payment_id": payment.ID.String(), "workshop_id": workshop.ID.String()},
		SendEmail: true,
		SendPush:  true,
	})
}

func (s *NotificationService) NotifyNewMessage(ctx context.Context, userID uuid.UUID, workshop *model.Workshop, sender *model.User) (*model.Notification, error) {
	return s.Create(ctx, CreateNotificationInput{
		UserID:    userID,
		Type:      model.NotifNewMessage,
		Title:     "New message in " + workshop.Title,
		Message:   fmt.Sprintf("%s sent a message in %q.", sender.FirstName, workshop.Title),
		Priority:  model.PriorityLow,
		Metadata:  map[string]string{"workshop_id": workshop.ID.String()},
		ActionURL: "/workshops/" + workshop.ID.String() + "/chat",
		SendPush:  true,
	})
}

func (s *NotificationService) NotifyNewReview(ctx context.Context, ownerID uuid.UUID, workshop *model.Workshop, review *model.Review) (*model.Notification, error) {
	return s.Create(ctx, CreateNotificationInput{
		UserID:    ownerID,
		Type:      model.NotifNewReview,
		Title:     "New review on " + workshop.Title,
		Message:   fmt.Sprintf("%q received a %d-star review.", workshop.Title, review.Rating),
		Priority:  model.PriorityLow,
		Metadata:  map[string]string{"workshop_id": workshop.ID.String(), "review_id": review.ID.String()},
		ActionURL: "/workshops/" + workshop.ID.String() + "/reviews",
		SendPush:  true,
	})
}

// MarkAsRead flips a notification owned by the caller to READ.
func (s *NotificationService) MarkAsRead(ctx context.Context, id, userID uuid.UUID) (*model.Notification, error) {
	notification, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if notification.UserID != userID {
		return nil, domain.ErrForbidden
	}

	if notification.Status == model.NotificationRead {
		return notification, nil
	}

	notification.Status = model.NotificationRead
	if err := s.repo.Update(ctx, notification); err != nil {
		return nil, fmt.Errorf("marking notification read: %w", err)
	}

	return notification, nil
}

// MarkAllAsRead flips every unread notification of the user and emits an
// allRead event for real-time UI sync.
func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	updated, err := s.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, err
	}

	if s.bus != nil && updated > 0 {
		s.bus.PublishAsync(event.Event{
			Topic:   event.TopicNotificationAllRead,
			Payload: AllRead{UserID: userID},
		})
	}

	return updated, nil
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *NotificationService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	notification, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if notification.UserID != userID {
		return domain.ErrForbidden
	}

	return s.repo.Delete(ctx, id)
}

func (s *NotificationService) List(ctx context.Context, userID uuid.UUID, status model.NotificationStatus, page, limit int) ([]*model.Notification, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.repo.FindByUser(ctx, userID, status, (page-1)*limit, limit)
}

// Preferences returns the user's preference row, creating the defaults on
// first access.
func (s *NotificationService) Preferences(ctx context.Context, userID uuid.UUID) (*model.NotificationPreferences, error) {
	prefs, err := s.repo.FindPreferences(ctx, userID)
	if err == nil {
		return prefs, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	prefs = model.DefaultPreferences(userID)
	if err := s.repo.CreatePreferences(ctx, prefs); err != nil {
		return nil, fmt.Errorf("creating default preferences: %w", err)
	}

	return prefs, nil
}

type UpdatePreferencesInput struct {
	EmailEnrollment *bool `json:"email_enrollment"`
	EmailReminders  *bool `json:"email_reminders"`
	EmailCancelled  *bool `json:"email_cancelled"`
	EmailPayments   *bool `json:"email_payments"`
	EmailMarketing  *bool `json:"email_marketing"`
	PushEnrollment  *bool `json:"push_enrollment"`
	PushReminders   *bool `json:"push_reminders"`
	PushCancelled   *bool `json:"push_cancelled"`
	PushPayments    *bool `json:"push_payments"`
	PushMessages    *bool `json:"push_messages"`
	PushMarketing   *bool `json:"push_marketing"`
	InAppEnabled    *bool `json:"in_app_enabled"`
}

// UpdatePreferences applies only the toggles present in the input.
func (s *NotificationService) UpdatePreferences(ctx context.Context, userID uuid.UUID, input UpdatePreferencesInput) (*model.NotificationPreferences, error) {
	prefs, err := s.Preferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	apply := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}

	apply(&prefs.EmailEnrollment, input.EmailEnrollment)
	apply(&prefs.EmailReminders, input.EmailReminders)
	apply(&prefs.EmailCancelled, input.EmailCancelled)
	apply(&prefs.EmailPayments, input.EmailPayments)
	apply(&prefs.EmailMarketing, input.EmailMarketing)
	apply(&prefs.PushEnrollment, input.PushEnrollment)
	apply(&prefs.PushReminders, input.PushReminders)
	apply(&prefs.PushCancelled, input.PushCancelled)
	apply(&prefs.PushPayments, input.PushPayments)
	apply(&prefs.PushMessages, input.PushMessages)
	apply(&prefs.PushMarketing, input.PushMarketing)
	apply(&prefs.InAppEnabled, input.InAppEnabled)

	if err := s.repo.UpdatePreferences(ctx, prefs); err != nil {
		return nil, err
	}

	return prefs, nil
}

// DeleteOldNotifications removes notifications created before the cutoff.
// Invoked by the retention sweep.
func (s *NotificationService) DeleteOldNotifications(ctx context.Context, cutoff time.Time) (int64, error) {
	return s.repo.DeleteOlderThan(ctx, cutoff)
}
