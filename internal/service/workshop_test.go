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

func TestCreateWorkshop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()

	t.Run("valid schedule", func(t *testing.T) {
		repo := mocks.NewMockWorkshopRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)

		svc := service.NewWorkshopService(repo, enrollmentRepo, nil)

		workshop, err := svc.Create(context.Background(), ownerID, service.CreateWorkshopInput{
			Title:    "Intro to Fermentation",
			Mode:     model.ModeOnline,
			StartsAt: time.Now().Add(24 * time.Hour),
			EndsAt:   time.Now().Add(26 * time.Hour),
		})

		assert.NoError(t, err)
		assert.Equal(t, ownerID, workshop.OwnerID)
	})

	t.Run("must start before it ends", func(t *testing.T) {
		repo := mocks.NewMockWorkshopRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

		svc := service.NewWorkshopService(repo, enrollmentRepo, nil)

		_, err := svc.Create(context.Background(), ownerID, service.CreateWorkshopInput{
			Title:    "Backwards",
			Mode:     model.ModeOnline,
			StartsAt: time.Now().Add(26 * time.Hour),
			EndsAt:   time.Now().Add(24 * time.Hour),
		})

		assert.ErrorIs(t, err, domain.ErrInvalidSchedule)
	})

	t.Run("must start in the future", func(t *testing.T) {
		repo := mocks.NewMockWorkshopRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

		svc := service.NewWorkshopService(repo, enrollmentRepo, nil)

		_, err := svc.Create(context.Background(), ownerID, service.CreateWorkshopInput{
			Title:    "Yesterday",
			Mode:     model.ModePresential,
			StartsAt: time.Now().Add(-time.Hour),
			EndsAt:   time.Now().Add(time.Hour),
		})

		assert.ErrorIs(t, err, domain.ErrWorkshopInPast)
	})
}

func TestUpdateWorkshop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	workshopID := uuid.New()

	existing := func() *model.Workshop {
		return &model.Workshop{
			ID:       workshopID,
			Title:    "Bread 101",
			OwnerID:  ownerID,
			StartsAt: time.Now().Add(48 * time.Hour),
			EndsAt:   time.Now().Add(50 * time.Hour),
		}
	}

	t.Run("owner renames", func(t *testing.T) {
		repo := mocks.NewMockWorkshopRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

		repo.EXPECT().
			FindByID(gomock.Any(), workshopID).
			Return(existing(), nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			Return(nil)

		svc := service.NewWorkshopService(repo, enrollmentRepo, nil)

		title := "Bread 102"
		workshop, err := svc.Update(context.Background(), workshopID, ownerID, service.UpdateWorkshopInput{
			Title: &title,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Bread 102", workshop.Title)
	})

	t.Run("only the owner may update", func(t *testing.T) {
		repo := mocks.NewMockWorkshopRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

		repo.EXPECT().
			FindByID(gomock.Any(), workshopID).
			Return(existing(), nil)

		svc := service.NewWorkshopService(repo, enrollmentRepo, nil)

		title := "Hijacked"
		_, err := svc.Update(context.Background(), workshopID, uuid.New(), service.UpdateWorkshopInput{
			Title: &title,
		})

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("merged schedule must stay valid", func(t *testing.T) {
		repo := mocks.NewMockWorkshopRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

		repo.EXPECT().
			FindByID(gomock.Any(), workshopID).
			Return(existing(), nil)

		svc := service.NewWorkshopService(repo, enrollmentRepo, nil)

		endsBeforeStart := time.Now().Add(47 * time.Hour)
		_, err := svc.Update(context.Background(), workshopID, ownerID, service.UpdateWorkshopInput{
			EndsAt: &endsBeforeStart,
		})

		assert.ErrorIs(t, err, domain.ErrInvalidSchedule)
	})
}

func TestDeleteWorkshop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	workshopID := uuid.New()

	t.Run("owner cancels", func(t *testing.T) {
		repo := mocks.NewMockWorkshopRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

		repo.EXPECT().
			FindByID(gomock.Any(), workshopID).
			Return(&model.Workshop{ID: workshopID, OwnerID: ownerID}, nil)
		repo.EXPECT().
			Delete(gomock.Any(), workshopID).
			Return(nil)

		svc := service.NewWorkshopService(repo, enrollmentRepo, nil)

		assert.NoError(t, svc.Delete(context.Background(), workshopID, ownerID))
	})

	t.Run("only the owner may cancel", func(t *testing.T) {
		repo := mocks.NewMockWorkshopRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

		repo.EXPECT().
			FindByID(gomock.Any(), workshopID).
			Return(&model.Workshop{ID: workshopID, OwnerID: ownerID}, nil)

		svc := service.NewWorkshopService(repo, enrollmentRepo, nil)

		err := svc.Delete(context.Background(), workshopID, uuid.New())

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}
