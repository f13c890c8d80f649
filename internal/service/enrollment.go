// internal/service/enrollment.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/skillsharehq/skillshare-hub/internal/domain"
	"github.com/skillsharehq/skillshare-hub/internal/model"
	"github.com/skillsharehq/skillshare-hub/internal/repository"
)

// EnrollmentStats summarizes a workshop's occupancy. AvailableSpots is nil
// when the workshop has no participant cap.
type EnrollmentStats struct {
	TotalEnrollments int64  `json:"total_enrollments"`
	AvailableSpots   *int64 `json:"available_spots"`
	IsFull           bool   `json:"is_full"`
}

type EnrollmentService struct {
	repo         repository.EnrollmentRepositoryIface
	workshopRepo repository.WorkshopRepositoryIface
	notifier     *NotificationService
	cache        *CacheService
	now          func() time.Time
}

func NewEnrollmentService(
	repo repository.EnrollmentRepositoryIface,
	workshopRepo repository.WorkshopRepositoryIface,
	notifier *NotificationService,
	cache *CacheService,
) *EnrollmentService {
	return &EnrollmentService{
		repo:         repo,
		workshopRepo: workshopRepo,
		notifier:     notifier,
		cache:        cache,
		now:          time.Now,
	}
}

// Enroll registers the user in a workshop. The capacity and uniqueness
// checks are enforced again at the storage layer under a row lock, so two
// concurrent calls cannot both pass.
func (s *EnrollmentService) Enroll(ctx context.Context, workshopID, userID uuid.UUID) (*model.Enrollment, error) {
	workshop, err := s.workshopRepo.FindByID(ctx, workshopID)
	if err != nil {
		return nil, err
	}

	if workshop.OwnerID == userID {
		return nil, domain.ErrOwnWorkshop
	}

	if workshop.HasStarted(s.now()) {
		return nil, domain.ErrWorkshopStarted
	}

	enrollment := &model.Enrollment{
		WorkshopID: workshopID,
		UserID:     userID,
	}

	if err := s.repo.Create(ctx, enrollment); err != nil {
		return nil, err
	}

	s.invalidateStats(ctx, workshopID)

	if s.notifier != nil {
		if _, err := s.notifier.NotifyWorkshopEnrollment(ctx, userID, workshop); err != nil {
			slog.Warn("sending enrollment notification", "error", err, "user_id", userID)
		}
	}

	return enrollment, nil
}

// Unenroll removes the user's enrollment. Late cancellations are rejected
// once the workshop has started.
func (s *EnrollmentService) Unenroll(ctx context.Context, workshopID, userID uuid.UUID) error {
	if _, err := s.repo.Find(ctx, workshopID, userID); err != nil {
		return err
	}

	workshop, err := s.workshopRepo.FindByID(ctx, workshopID)
	if err != nil {
		return err
	}

	if workshop.HasStarted(s.now()) {
		return domain.ErrWorkshopStarted
	}

	if err := s.repo.Delete(ctx, workshopID, userID); err != nil {
		return err
	}

	s.invalidateStats(ctx, workshopID)
	return nil
}

func (s *EnrollmentService) IsUserEnrolled(ctx context.Context, workshopID, userID uuid.UUID) (bool, error) {
	_, err := s.repo.Find(ctx, workshopID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrEnrollmentNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *EnrollmentService) FindUserEnrollments(ctx context.Context, userID uuid.UUID) ([]*model.Enrollment, error) {
	return s.repo.FindByUser(ctx, userID)
}

func (s *EnrollmentService) FindWorkshopEnrollments(ctx context.Context, workshopID uuid.UUID) ([]*model.Enrollment, error) {
	return s.repo.FindByWorkshop(ctx, workshopID)
}

// Stats returns the occupancy summary for a workshop. Results are cached
// briefly since the browse page polls this endpoint.
func (s *EnrollmentService) Stats(ctx context.Context, workshopID uuid.UUID) (*EnrollmentStats, error) {
	if s.cache != nil {
		var cached EnrollmentStats
		if err := s.cache.Get(ctx, statsCacheKey(workshopID), &cached); err == nil {
			return &cached, nil
		}
	}

	workshop, err := s.workshopRepo.FindByID(ctx, workshopID)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.CountByWorkshop(ctx, workshopID)
	if err != nil {
		return nil, err
	}

	stats := &EnrollmentStats{TotalEnrollments: total}
	if workshop.MaxParticipants != nil {
		available := int64(*workshop.MaxParticipants) - total
		if available < 0 {
			available = 0
		}
		stats.AvailableSpots = &available
		stats.IsFull = available == 0
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, statsCacheKey(workshopID), stats); err != nil {
			slog.Warn("caching enrollment stats", "error", err)
		}
	}

	return stats, nil
}

func (s *EnrollmentService) invalidateStats(ctx context.Context, workshopID uuid.UUID) {
	if s.cache != nil {
		_ = s.cache.Delete(ctx, statsCacheKey(workshopID))
	}
}

func statsCacheKey(workshopID uuid.UUID) string {
	return fmt.Sprintf("enrollment_stats:%s", workshopID)
}
