// internal/service/workshop.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/skillsharehq/skillshare-hub/internal/domain"
	"github.com/skillsharehq/skillshare-hub/internal/model"
	"github.com/skillsharehq/skillshare-hub/internal/repository"
)

type WorkshopService struct {
	repo           repository.WorkshopRepositoryIface
	enrollmentRepo repository.EnrollmentRepositoryIface
	notifier       *NotificationService
	validate       *validator.Validate
	now            func() time.Time
}

func NewWorkshopService(
	repo repository.WorkshopRepositoryIface,
	enrollmentRepo repository.EnrollmentRepositoryIface,
	notifier *NotificationService,
) *WorkshopService {
	return &WorkshopService{
		repo:           repo,
		enrollmentRepo: enrollmentRepo,
		notifier:       notifier,
		validate:       validator.New(),
		now:            time.Now,
	}
}

type CreateWorkshopInput struct {
	Title           string             `json:"title" validate:"required,min=3,max=200"`
	Description     string             `json:"description" validate:"max=5000"`
	Price           float64            `json:"price" validate:"gte=0"`
	Mode            model.WorkshopMode `json:"mode" validate:"required,oneof=ONLINE PRESENTIAL"`
	StartsAt        time.Time          `json:"starts_at" validate:"required"`
	EndsAt          time.Time          `json:"ends_at" validate:"required"`
	MaxParticipants *int               `json:"max_participants" validate:"omitempty,gt=0"`
}

type UpdateWorkshopInput struct {
	Title           *string             `json:"title" validate:"omitempty,min=3,max=200"`
	Description     *string             `json:"description" validate:"omitempty,max=5000"`
	Price           *float64            `json:"price" validate:"omitempty,gte=0"`
	Mode            *model.WorkshopMode `json:"mode" validate:"omitempty,oneof=ONLINE PRESENTIAL"`
	StartsAt        *time.Time          `json:"starts_at"`
	EndsAt          *time.Time          `json:"ends_at"`
	MaxParticipants *int                `json:"max_participants" validate:"omitempty,gt=0"`
}

// Create validates the schedule and opens the workshop for enrollment.
// Students of the instructor's earlier workshops get an announcement.
func (s *WorkshopService) Create(ctx context.Context, ownerID uuid.UUID, input CreateWorkshopInput) (*model.Workshop, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if !input.StartsAt.Before(input.EndsAt) {
		return nil, domain.ErrInvalidSchedule
	}

	if !input.StartsAt.After(s.now()) {
		return nil, domain.ErrWorkshopInPast
	}

	workshop := &model.Workshop{
		Title:           input.Title,
		Description:     input.Description,
		Price:           input.Price,
		Mode:            input.Mode,
		StartsAt:        input.StartsAt,
		EndsAt:          input.EndsAt,
		MaxParticipants: input.MaxParticipants,
		OwnerID:         ownerID,
	}

	if err := s.repo.Create(ctx, workshop); err != nil {
		return nil, err
	}

	s.announceToStudents(ctx, workshop)

	return workshop, nil
}

// announceToStudents fans the new-workshop notification out to everyone
// enrolled in the instructor's other workshops. Best effort per student.
func (s *WorkshopService) announceToStudents(ctx context.Context, workshop *model.Workshop) {
	if s.notifier == nil {
		return
	}

	studentIDs, err := s.enrollmentRepo.FindStudentIDsByOwner(ctx, workshop.OwnerID)
	if err != nil {
		slog.Warn("finding students for workshop announcement", "error", err, "workshop_id", workshop.ID)
		return
	}

	for _, studentID := range studentIDs {
		if _, err := s.notifier.NotifyNewWorkshop(ctx, studentID, workshop); err != nil {
			slog.Warn("sending new workshop notification", "error", err, "user_id", studentID)
		}
	}
}

// Update applies the fields present in the input. Owner only. The schedule
// rule holds against the merged values.
func (s *WorkshopService) Update(ctx context.Context, id, userID uuid.UUID, input UpdateWorkshopInput) (*model.Workshop, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	workshop, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if workshop.OwnerID != userID {
		return nil, domain.ErrForbidden
	}

	if input.Title != nil {
		workshop.Title = *input.Title
	}
	if input.Description != nil {
		workshop.Description = *input.Description
	}
	if input.Price != nil {
		workshop.Price = *input.Price
	}
	if input.Mode != nil {
		workshop.Mode = *input.Mode
	}
	if input.StartsAt != nil {
		workshop.StartsAt = *input.StartsAt
	}
	if input.EndsAt != nil {
		workshop.EndsAt = *input.EndsAt
	}
	if input.MaxParticipants != nil {
		workshop.MaxParticipants = input.MaxParticipants
	}

	if !workshop.StartsAt.Before(workshop.EndsAt) {
		return nil, domain.ErrInvalidSchedule
	}

	if err := s.repo.Update(ctx, workshop); err != nil {
		return nil, err
	}

	if s.notifier != nil && (input.StartsAt != nil || input.EndsAt != nil) {
		s.notifyEnrolled(ctx, workshop, func(uid uuid.UUID) error {
			_, err := s.notifier.Create(ctx, CreateNotificationInput{
				UserID:    uid,
				Type:      model.NotifWorkshopUpdated,
				Title:     "Workshop rescheduled",
				Message:   fmt.Sprintf("%q now starts %s.", workshop.Title, workshop.StartsAt.Format(time.RFC1123)),
				Priority:  model.PriorityHigh,
				Metadata:  map[string]string{"workshop_id": workshop.ID.String()},
				ActionURL: "/workshops/" + workshop.ID.String(),
				SendEmail: true,
				SendPush:  true,
			})
			return err
		})
	}

	return workshop, nil
}

// Delete cancels a workshop. Owner only. Every enrollee is told before the
// rows go away.
func (s *WorkshopService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	workshop, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if workshop.OwnerID != userID {
		return domain.ErrForbidden
	}

	if s.notifier != nil {
		s.notifyEnrolled(ctx, workshop, func(uid uuid.UUID) error {
			_, err := s.notifier.NotifyWorkshopCancelled(ctx, uid, workshop)
			return err
		})
	}

	return s.repo.Delete(ctx, id)
}

// notifyEnrolled runs notify for every enrolled user, logging failures
// instead of propagating them.
func (s *WorkshopService) notifyEnrolled(ctx context.Context, workshop *model.Workshop, notify func(uuid.UUID) error) {
	enrollments, err := s.enrollmentRepo.FindByWorkshop(ctx, workshop.ID)
	if err != nil {
		slog.Warn("finding enrollments for workshop notification", "error", err, "workshop_id", workshop.ID)
		return
	}

	for _, enrollment := range enrollments {
		if err := notify(enrollment.UserID); err != nil {
			slog.Warn("notifying enrolled user", "error", err, "user_id", enrollment.UserID)
		}
	}
}

func (s *WorkshopService) Get(ctx context.Context, id uuid.UUID) (*model.Workshop, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *WorkshopService) GetWithEnrollments(ctx context.Context, id uuid.UUID) (*model.Workshop, error) {
	return s.repo.FindByIDWithEnrollments(ctx, id)
}

func (s *WorkshopService) List(ctx context.Context, filter repository.WorkshopFilter, page, limit int) ([]*model.Workshop, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.repo.List(ctx, filter, (page-1)*limit, limit)
}
