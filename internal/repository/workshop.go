// internal/repository/workshop.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/skillsharehq/skillshare-hub/internal/domain"
	"github.com/skillsharehq/skillshare-hub/internal/model"
	"gorm.io/gorm"
)

// WorkshopFilter narrows List results. Zero values mean "no filter".
type WorkshopFilter struct {
	Mode         model.WorkshopMode
	OwnerID      uuid.UUID
	UpcomingOnly bool
}

type WorkshopRepositoryIface interface {
	Create(ctx context.Context, workshop *model.Workshop) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Workshop, error)
	FindByIDWithEnrollments(ctx context.Context, id uuid.UUID) (*model.Workshop, error)
	Update(ctx context.Context, workshop *model.Workshop) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter WorkshopFilter, offset, limit int) ([]*model.Workshop, int64, error)
	FindStartingBetween(ctx context.Context, from, to time.Time) ([]*model.Workshop, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
	CountAll(ctx context.Context) (int64, error)
}

type WorkshopRepository struct {
	db *gorm.DB
}

func NewWorkshopRepository(db *gorm.DB) *WorkshopRepository {
	return &WorkshopRepository{db: db}
}

func (r *WorkshopRepository) Create(ctx context.Context, workshop *model.Workshop) error {
	if err := r.db.WithContext(ctx).Create(workshop).Error; err != nil {
		return fmt.Errorf("creating workshop: %w", err)
	}
	return nil
}

func (r *WorkshopRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Workshop, error) {
	var workshop model.Workshop
	if err := r.db.WithContext(ctx).Preload("Owner").First(&workshop, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrWorkshopNotFound
		}
		return nil, fmt.Errorf("finding workshop: %w", err)
	}
	return &workshop, nil
}

func (r *WorkshopRepository) FindByIDWithEnrollments(ctx context.Context, id uuid.UUID) (*model.Workshop, error) {
	var workshop model.Workshop
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Enrollments").
		Preload("Enrollments.User").
		First(&workshop, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrWorkshopNotFound
		}
		return nil, fmt.Errorf("finding workshop with enrollments: %w", err)
	}
	return &workshop, nil
}

func (r *WorkshopRepository) Update(ctx context.Context, workshop *model.Workshop) error {
	if err := r.db.WithContext(ctx).Save(workshop).Error; err != nil {
		return fmt.Errorf("updating workshop: %w", err)
	}
	return nil
}

func (r *WorkshopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Remove dependent rows first, the workshop last.
		if err := tx.Where("workshop_id = ?", id).Delete(&model.Enrollment{}).Error; err != nil {
			return fmt.Errorf("deleting enrollments: %w", err)
		}

		if err := tx.Where("workshop_id = ?", id).Delete(&model.ChatMessage{}).Error; err != nil {
			return fmt.Errorf("deleting chat messages: %w", err)
		}

		if err := tx.Delete(&model.Workshop{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting workshop: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

func (r *WorkshopRepository) List(ctx context.Context, filter WorkshopFilter, offset, limit int) ([]*model.Workshop, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Workshop{})

	if filter.Mode != "" {
		query = query.Where("mode = ?", filter.Mode)
	}
	if filter.OwnerID != uuid.Nil {
		query = query.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.UpcomingOnly {
		query = query.Where("starts_at > ?", time.Now().UTC())
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("counting workshops: %w", err)
	}

	var workshops []*model.Workshop
	if err := query.Preload("Owner").
		Order("starts_at ASC").
		Offset(offset).Limit(limit).
		Find(&workshops).Error; err != nil {
		return nil, 0, fmt.Errorf("listing workshops: %w", err)
	}

	return workshops, count, nil
}

// FindStartingBetween returns workshops with starts_at in [from, to), with
// enrollments and enrolled users preloaded. Used by the reminder job.
func (r *WorkshopRepository) FindStartingBetween(ctx context.Context, from, to time.Time) ([]*model.Workshop, error) {
	var workshops []*model.Workshop
	if err := r.db.WithContext(ctx).
		Where("starts_at >= ? AND starts_at < ?", from, to).
		Preload("Enrollments").
		Preload("Enrollments.User").
		Find(&workshops).Error; err != nil {
		return nil, fmt.Errorf("finding workshops starting between: %w", err)
	}
	return workshops, nil
}

func (r *WorkshopRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Workshop{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting owner workshops: %w", err)
	}
	return count, nil
}

func (r *WorkshopRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Workshop{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting workshops: %w", err)
	}
	return count, nil
}
