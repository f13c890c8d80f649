// internal/repository/review.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/skillsharehq/skillshare-hub/internal/domain"
	"github.com/skillsharehq/skillshare-hub/internal/model"
	"gorm.io/gorm"
)

type ReviewRepositoryIface interface {
	Create(ctx context.Context, review *model.Review) error
	FindByWorkshop(ctx context.Context, workshopID uuid.UUID) ([]*model.Review, error)
	Find(ctx context.Context, workshopID, userID uuid.UUID) (*model.Review, error)
	AverageByOwner(ctx context.Context, ownerID uuid.UUID) (float64, error)
}

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review *model.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrAlreadyReviewed
		}
		return fmt.Errorf("creating review: %w", err)
	}
	return nil
}

func (r *ReviewRepository) FindByWorkshop(ctx context.Context, workshopID uuid.UUID) ([]*model.Review, error) {
	var reviews []*model.Review
	if err := r.db.WithContext(ctx).
		Where("workshop_id = ?", workshopID).
		Preload("User").
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("finding workshop reviews: %w", err)
	}
	return reviews, nil
}

func (r *ReviewRepository) Find(ctx context.Context, workshopID, userID uuid.UUID) (*model.Review, error) {
	var review model.Review
	if err := r.db.WithContext(ctx).
		Where("workshop_id = ? AND user_id = ?", workshopID, userID).
		First(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("finding review: %w", err)
	}
	return &review, nil
}

func (r *ReviewRepository) AverageByOwner(ctx context.Context, ownerID uuid.UUID) (float64, error) {
	var avg float64
	if err := r.db.WithContext(ctx).Model(&model.Review{}).
		Select("COALESCE(AVG(reviews.rating), 0)").
		Joins("JOIN workshops ON workshops.id = reviews.workshop_id").
		Where("workshops.owner_id = ?", ownerID).
		Scan(&avg).Error; err != nil {
		return 0, fmt.Errorf("averaging owner ratings: %w", err)
	}
	return avg, nil
}
