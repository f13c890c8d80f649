package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/skillsharehq/skillshare-hub/internal/mocks"
	"github.com/skillsharehq/skillshare-hub/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestInstructorStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()

	userRepo := mocks.NewMockUserRepositoryIface(ctrl)
	workshopRepo := mocks.NewMockWorkshopRepositoryIface(ctrl)
	enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)
	paymentRepo := mocks.NewMockPaymentRepositoryIface(ctrl)
	reviewRepo := mocks.NewMockReviewRepositoryIface(ctrl)

	workshopRepo.EXPECT().CountByOwner(gomock.Any(), ownerID).Return(int64(3), nil)
	enrollmentRepo.EXPECT().CountByOwner(gomock.Any(), ownerID).Return(int64(41), nil)
	paymentRepo.EXPECT().RevenueByOwner(gomock.Any(), ownerID).Return(6150.0, nil)
	reviewRepo.EXPECT().AverageByOwner(gomock.Any(), ownerID).Return(4.6666666, nil)

	svc := service.NewAnalyticsService(userRepo, workshopRepo, enrollmentRepo, paymentRepo, reviewRepo)

	stats, err := svc.InstructorStats(context.Background(), ownerID)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalWorkshops)
	assert.Equal(t, int64(41), stats.TotalEnrollments)
	assert.Equal(t, 6150.0, stats.TotalRevenue)
	assert.Equal(t, 4.7, stats.AverageRating)
}

func TestPlatformStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepositoryIface(ctrl)
	workshopRepo := mocks.NewMockWorkshopRepositoryIface(ctrl)
	enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)
	paymentRepo := mocks.NewMockPaymentRepositoryIface(ctrl)
	reviewRepo := mocks.NewMockReviewRepositoryIface(ctrl)

	userRepo.EXPECT().CountAll(gomock.Any()).Return(int64(1200), nil)
	workshopRepo.EXPECT().CountAll(gomock.Any()).Return(int64(85), nil)
	enrollmentRepo.EXPECT().CountAll(gomock.Any()).Return(int64(3100), nil)
	paymentRepo.EXPECT().TotalRevenue(gomock.Any()).Return(98250.50, nil)

	svc := service.NewAnalyticsService(userRepo, workshopRepo, enrollmentRepo, paymentRepo, reviewRepo)

	stats, err := svc.PlatformStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(1200), stats.TotalUsers)
	assert.Equal(t, int64(85), stats.TotalWorkshops)
	assert.Equal(t, int64(3100), stats.TotalEnrollments)
	assert.Equal(t, 98250.50, stats.TotalRevenue)
}
