// internal/service/review.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/skillsharehq/skillshare-hub/internal/domain"
	"github.com/skillsharehq/skillshare-hub/internal/model"
	"github.com/skillsharehq/skillshare-hub/internal/repository"
)

type ReviewService struct {
	repo           repository.ReviewRepositoryIface
	workshopRepo   repository.WorkshopRepositoryIface
	enrollmentRepo repository.EnrollmentRepositoryIface
	notifier       *NotificationService
	validate       *validator.Validate
}

func NewReviewService(
	repo repository.ReviewRepositoryIface,
	workshopRepo repository.WorkshopRepositoryIface,
	enrollmentRepo repository.EnrollmentRepositoryIface,
	notifier *NotificationService,
) *ReviewService {
	return &ReviewService{
		repo:           repo,
		workshopRepo:   workshopRepo,
		enrollmentRepo: enrollmentRepo,
		notifier:       notifier,
		validate:       validator.New(),
	}
}

type CreateReviewInput struct {
	Rating  int    `json:"rating" validate:"required"`
	Comment string `json:"comment" validate:"max=2000"`
}

// CreateReview records an enrolled user's rating of a workshop, one per
// user. The workshop owner hears about it.
func (s *ReviewService) CreateReview(ctx context.Context, workshopID, userID uuid.UUID, input CreateReviewInput) (*model.Review, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if input.Rating < 1 || input.Rating > 5 {
		return nil, domain.ErrInvalidRating
	}

	workshop, err := s.workshopRepo.FindByID(ctx, workshopID)
	if err != nil {
		return nil, err
	}

	if _, err := s.enrollmentRepo.Find(ctx, workshopID, userID); err != nil {
		if errors.Is(err, domain.ErrEnrollmentNotFound) {
			return nil, domain.ErrNotEnrolledToReview
		}
		return nil, err
	}

	review := &model.Review{
		WorkshopID: workshopID,
		UserID:     userID,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}

	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if _, err := s.notifier.NotifyNewReview(ctx, workshop.OwnerID, workshop, review); err != nil {
			slog.Warn("sending review notification", "error", err, "workshop_id", workshopID)
		}
	}

	return review, nil
}

// ReviewSummary aggregates a workshop's reviews for display.
type ReviewSummary struct {
	Reviews            []*model.Review `json:"reviews"`
	AverageRating      float64         `json:"average_rating"`
	RatingDistribution map[int]int     `json:"rating_distribution"`
	TotalReviews       int             `json:"total_reviews"`
}

// GetWorkshopReviews lists a workshop's reviews with the average rounded to
// one decimal and a per-star count.
func (s *ReviewService) GetWorkshopReviews(ctx context.Context, workshopID uuid.UUID) (*ReviewSummary, error) {
	if _, err := s.workshopRepo.FindByID(ctx, workshopID); err != nil {
		return nil, err
	}

	reviews, err := s.repo.FindByWorkshop(ctx, workshopID)
	if err != nil {
		return nil, err
	}

	distribution := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	sum := 0
	for _, review := range reviews {
		distribution[review.Rating]++
		sum += review.Rating
	}

	average := 0.0
	if len(reviews) > 0 {
		average = math.Round(float64(sum)/float64(len(reviews))*10) / 10
	}

	return &ReviewSummary{
		Reviews:            reviews,
		AverageRating:      average,
		RatingDistribution: distribution,
		TotalReviews:       len(reviews),
	}, nil
}
