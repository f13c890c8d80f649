package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/skillsharehq/skillshare-hub/internal/domain"
	"github.com/skillsharehq/skillshare-hub/internal/mocks"
	"github.com/skillsharehq/skillshare-hub/internal/model"
	"github.com/skillsharehq/skillshare-hub/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCreateReview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	workshopID := uuid.New()
	workshop := &model.Workshop{ID: workshopID, Title: "Pottery Wheel Intro", OwnerID: uuid.New()}

	t.Run("enrolled user leaves a review", func(t *testing.T) {
		repo := mocks.NewMockReviewRepositoryIface(ctrl)
		workshopRepo := mocks.NewMockWorkshopRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

		workshopRepo.EXPECT().
			FindByID(gomock.Any(), workshopID).
			Return(workshop, nil)
		enrollmentRepo.EXPECT().
			Find(gomock.Any(), workshopID, userID).
			Return(&model.Enrollment{WorkshopID: workshopID, UserID: userID}, nil)
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)

		svc := service.NewReviewService(repo, workshopRepo, enrollmentRepo, nil)

		review, err := svc.CreateReview(context.Background(), workshopID, userID, service.CreateReviewInput{
			Rating:  5,
			Comment: "learned a lot",
		})

		assert.NoError(t, err)
		assert.Equal(t, 5, review.Rating)
		assert.Equal(t, userID, review.UserID)
	})

	t.Run("rating above five is rejected", func(t *testing.T) {
		repo := mocks.NewMockReviewRepositoryIface(ctrl)
		workshopRepo := mocks.NewMockWorkshopRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

		svc := service.NewReviewService(repo, workshopRepo, enrollmentRepo, nil)

		_, err := svc.CreateReview(context.Background(), workshopID, userID, service.CreateReviewInput{
			Rating: 6,
		})

		assert.ErrorIs(t, err, domain.ErrInvalidRating)
	})

	t.Run("only enrolled users may review", func(t *testing.T) {
		repo := mocks.NewMockReviewRepositoryIface(ctrl)
		workshopRepo := mocks.NewMockWorkshopRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

		workshopRepo.EXPECT().
			FindByID(gomock.Any(), workshopID).
			Return(workshop, nil)
		enrollmentRepo.EXPECT().
			Find(gomock.Any(), workshopID, userID).
			Return(nil, domain.ErrEnrollmentNotFound)

		svc := service.NewReviewService(repo, workshopRepo, enrollmentRepo, nil)

		_, err := svc.CreateReview(context.Background(), workshopID, userID, service.CreateReviewInput{
			Rating: 4,
		})

		assert.ErrorIs(t, err, domain.ErrNotEnrolledToReview)
	})

	t.Run("one review per user", func(t *testing.T) {
		repo := mocks.NewMockReviewRepositoryIface(ctrl)
		workshopRepo := mocks.NewMockWorkshopRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

		workshopRepo.EXPECT().
			FindByID(gomock.Any(), workshopID).
			Return(workshop, nil)
		enrollmentRepo.EXPECT().
			Find(gomock.Any(), workshopID, userID).
			Return(&model.Enrollment{WorkshopID: workshopID, UserID: userID}, nil)
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(domain.ErrAlreadyReviewed)

		svc := service.NewReviewService(repo, workshopRepo, enrollmentRepo, nil)

		_, err := svc.CreateReview(context.Background(), workshopID, userID, service.CreateReviewInput{
			Rating: 3,
		})

		assert.ErrorIs(t, err, domain.ErrAlreadyReviewed)
	})
}

func TestGetWorkshopReviews(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	workshopID := uuid.New()

	t.Run("average rounds to one decimal", func(t *testing.T) {
		repo := mocks.NewMockReviewRepositoryIface(ctrl)
		workshopRepo := mocks.NewMockWorkshopRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

		workshopRepo.EXPECT().
			FindByID(gomock.Any(), workshopID).
			Return(&model.Workshop{ID: workshopID}, nil)
		repo.EXPECT().
			FindByWorkshop(gomock.Any(), workshopID).
			Return([]*model.Review{
				{Rating: 5},
				{Rating: 4},
				{Rating: 5},
			}, nil)

		svc := service.NewReviewService(repo, workshopRepo, enrollmentRepo, nil)

		summary, err := svc.GetWorkshopReviews(context.Background(), workshopID)

		assert.NoError(t, err)
		assert.Equal(t, 4.7, summary.AverageRating)
		assert.Equal(t, 3, summary.TotalReviews)
		assert.Equal(t, 2, summary.RatingDistribution[5])
		assert.Equal(t, 1, summary.RatingDistribution[4])
		assert.Equal(t, 0, summary.RatingDistribution[1])
	})

	t.Run("no reviews means a zero average", func(t *testing.T) {
		repo := mocks.NewMockReviewRepositoryIface(ctrl)
		workshopRepo := mocks.NewMockWorkshopRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

		workshopRepo.EXPECT().
			FindByID(gomock.Any(), workshopID).
			Return(&model.Workshop{ID: workshopID}, nil)
		repo.EXPECT().
			FindByWorkshop(gomock.Any(), workshopID).
			Return(nil, nil)

		svc := service.NewReviewService(repo, workshopRepo, enrollmentRepo, nil)

		summary, err := svc.GetWorkshopReviews(context.Background(), workshopID)

		assert.NoError(t, err)
		assert.Equal(t, 0.0, summary.AverageRating)
		assert.Equal(t, 0, summary.TotalReviews)
	})
}
