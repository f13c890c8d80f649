package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/skillsharehq/skillshare-hub/internal/domain"
	"github.com/skillsharehq/skillshare-hub/internal/mocks"
	"github.com/skillsharehq/skillshare-hub/internal/model"
	"github.com/skillsharehq/skillshare-hub/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// recordingMailer captures outgoing notification emails.
type recordingMailer struct {
	sent []string
}

func (m *recordingMailer) SendNotification(to, firstName string, notification *model.Notification) error {
	m.sent = append(m.sent, to)
	return nil
}

func TestNotificationChannels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	user := &model.User{
		ID:        userID,
		Email:     "student@example.com",
		FirstName: "Sam",
		Status:    model.StatusActive,
	}
	workshop := &model.Workshop{
		ID:       uuid.New(),
		Title:    "Macro Photography",
		StartsAt: time.Now().Add(24 * time.Hour),
	}
	sender := &model.User{ID: uuid.New(), FirstName: "Alex"}

	t.Run("muted push preference suppresses the push channel", func(t *testing.T) {
		repo := mocks.NewMockNotificationRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		muted := model.DefaultPreferences(userID)
		muted.PushMessages = false

		userRepo.EXPECT().
			FindByID(gomock.Any(), userID).
			Return(user, nil)
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)
		repo.EXPECT().
			FindPreferences(gomock.Any(), userID).
			Return(muted, nil)

		svc := service.NewNotificationService(repo, userRepo, nil, nil)

		notification, err := svc.NotifyNewMessage(context.Background(), userID, workshop, sender)

		assert.NoError(t, err)
		assert.False(t, notification.PushSent)
		assert.False(t, notification.EmailSent)
	})

	t.Run("default preferences allow push for chat messages", func(t *testing.T) {
		repo := mocks.NewMockNotificationRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		userRepo.EXPECT().
			FindByID(gomock.Any(), userID).
			Return(user, nil)
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)
		repo.EXPECT().
			FindPreferences(gomock.Any(), userID).
			Return(model.DefaultPreferences(userID), nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			Return(nil)

		svc := service.NewNotificationService(repo, userRepo, nil, nil)

		notification, err := svc.NotifyNewMessage(context.Background(), userID, workshop, sender)

		assert.NoError(t, err)
		assert.True(t, notification.PushSent)
	})

	t.Run("enrollment confirmation goes out by email", func(t *testing.T) {
		repo := mocks.NewMockNotificationRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		mailer := &recordingMailer{}

		userRepo.EXPECT().
			FindByID(gomock.Any(), userID).
			Return(user, nil)
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)
		repo.EXPECT().
			FindPreferences(gomock.Any(), userID).
			Return(model.DefaultPreferences(userID), nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			Return(nil)

		svc := service.NewNotificationService(repo, userRepo, mailer, nil)

		notification, err := svc.NotifyWorkshopEnrollment(context.Background(), userID, workshop)

		assert.NoError(t, err)
		assert.True(t, notification.EmailSent)
		assert.Equal(t, []string{user.Email}, mailer.sent)
	})

	t.Run("muted email preference keeps the inbox quiet", func(t *testing.T) {
		repo := mocks.NewMockNotificationRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		mailer := &recordingMailer{}

		muted := model.DefaultPreferences(userID)
		muted.EmailEnrollment = false
		muted.PushEnrollment = false

		userRepo.EXPECT().
			FindByID(gomock.Any(), userID).
			Return(user, nil)
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)
		repo.EXPECT().
			FindPreferences(gomock.Any(), userID).
			Return(muted, nil)

		svc := service.NewNotificationService(repo, userRepo, mailer, nil)

		notification, err := svc.NotifyWorkshopEnrollment(context.Background(), userID, workshop)

		assert.NoError(t, err)
		assert.False(t, notification.EmailSent)
		assert.False(t, notification.PushSent)
		assert.Empty(t, mailer.sent)
	})
}

func TestMarkAsRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	notificationID := uuid.New()

	t.Run("owner marks unread as read", func(t *testing.T) {
		repo := mocks.NewMockNotificationRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		repo.EXPECT().
			FindByID(gomock.Any(), notificationID).
			Return(&model.Notification{ID: notificationID, UserID: userID, Status: model.NotificationUnread}, nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			Return(nil)

		svc := service.NewNotificationService(repo, userRepo, nil, nil)

		notification, err := svc.MarkAsRead(context.Background(), notificationID, userID)

		assert.NoError(t, err)
		assert.Equal(t, model.NotificationRead, notification.Status)
	})

	t.Run("marking an already read notification is a no-op", func(t *testing.T) {
		repo := mocks.NewMockNotificationRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		repo.EXPECT().
			FindByID(gomock.Any(), notificationID).
			Return(&model.Notification{ID: notificationID, UserID: userID, Status: model.NotificationRead}, nil)

		svc := service.NewNotificationService(repo, userRepo, nil, nil)

		notification, err := svc.MarkAsRead(context.Background(), notificationID, userID)

		assert.NoError(t, err)
		assert.Equal(t, model.NotificationRead, notification.Status)
	})

	t.Run("somebody else's notification is off limits", func(t *testing.T) {
		repo := mocks.NewMockNotificationRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		repo.EXPECT().
			FindByID(gomock.Any(), notificationID).
			Return(&model.Notification{ID: notificationID, UserID: uuid.New()}, nil)

		svc := service.NewNotificationService(repo, userRepo, nil, nil)

		_, err := svc.MarkAsRead(context.Background(), notificationID, userID)

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestPreferences(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("defaults are created on first access", func(t *testing.T) {
		repo := mocks.NewMockNotificationRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		repo.EXPECT().
			FindPreferences(gomock.Any(), userID).
			Return(nil, domain.ErrNotFound)
		repo.EXPECT().
			CreatePreferences(gomock.Any(), gomock.Any()).
			Return(nil)

		svc := service.NewNotificationService(repo, userRepo, nil, nil)

		prefs, err := svc.Preferences(context.Background(), userID)

		assert.NoError(t, err)
		assert.True(t, prefs.EmailEnrollment)
		assert.True(t, prefs.InAppEnabled)
		assert.False(t, prefs.EmailMarketing)
	})

	t.Run("partial update only flips the given toggles", func(t *testing.T) {
		repo := mocks.NewMockNotificationRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		repo.EXPECT().
			FindPreferences(gomock.Any(), userID).
			Return(model.DefaultPreferences(userID), nil)
		repo.EXPECT().
			UpdatePreferences(gomock.Any(), gomock.Any()).
			Return(nil)

		svc := service.NewNotificationService(repo, userRepo, nil, nil)

		off := false
		prefs, err := svc.UpdatePreferences(context.Background(), userID, service.UpdatePreferencesInput{
			PushMessages: &off,
		})

		assert.NoError(t, err)
		assert.False(t, prefs.PushMessages)
		assert.True(t, prefs.PushReminders)
	})
}
