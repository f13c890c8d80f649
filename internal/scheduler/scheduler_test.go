package scheduler_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/skillsharehq/skillshare-hub/internal/mocks"
	"github.com/skillsharehq/skillshare-hub/internal/model"
	"github.com/skillsharehq/skillshare-hub/internal/scheduler"
	"github.com/skillsharehq/skillshare-hub/internal/service"
	"go.uber.org/mock/gomock"
)

func TestSendReminders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	studentID := uuid.New()
	workshopID := uuid.New()

	workshopRepo := mocks.NewMockWorkshopRepositoryIface(ctrl)
	notificationRepo := mocks.NewMockNotificationRepositoryIface(ctrl)
	userRepo := mocks.NewMockUserRepositoryIface(ctrl)

	tomorrow := &model.Workshop{
		ID:       workshopID,
		Title:    "Espresso Fundamentals",
		StartsAt: time.Now().UTC().Add(26 * time.Hour),
		Enrollments: []model.Enrollment{
			{WorkshopID: workshopID, UserID: studentID},
		},
	}

	workshopRepo.EXPECT().
		FindStartingBetween(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*model.Workshop{tomorrow}, nil)

	userRepo.EXPECT().
		FindByID(gomock.Any(), studentID).
		Return(&model.User{ID: studentID, Email: "student@example.com", FirstName: "Sam"}, nil)
	notificationRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil)
	notificationRepo.EXPECT().
		FindPreferences(gomock.Any(), studentID).
		Return(model.DefaultPreferences(studentID), nil)
	notificationRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		Return(nil)

	notificationService := service.NewNotificationService(notificationRepo, userRepo, nil, nil)

	scheduler.New(workshopRepo, notificationService).SendReminders()
}

func TestSweepNotifications(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	workshopRepo := mocks.NewMockWorkshopRepositoryIface(ctrl)
	notificationRepo := mocks.NewMockNotificationRepositoryIface(ctrl)
	userRepo := mocks.NewMockUserRepositoryIface(ctrl)

	notificationRepo.EXPECT().
		DeleteOlderThan(gomock.Any(), gomock.Any()).
		Return(int64(12), nil)

	notificationService := service.NewNotificationService(notificationRepo, userRepo, nil, nil)

	scheduler.New(workshopRepo, notificationService).SweepNotifications()
}
