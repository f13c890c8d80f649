// internal/repository/enrollment.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/skillsharehq/skillshare-hub/internal/domain"
	"github.com/skillsharehq/skillshare-hub/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EnrollmentRepositoryIface interface {
	Create(ctx context.Context, enrollment *model.Enrollment) error
	Delete(ctx context.Context, workshopID, userID uuid.UUID) error
	Find(ctx context.Context, workshopID, userID uuid.UUID) (*model.Enrollment, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Enrollment, error)
	FindByWorkshop(ctx context.Context, workshopID uuid.UUID) ([]*model.Enrollment, error)
	CountByWorkshop(ctx context.Context, workshopID uuid.UUID) (int64, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
	FindStudentIDsByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error)
	CountAll(ctx context.Context) (int64, error)
}

type EnrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// insertEnrollmentLocked inserts an enrollment inside the caller's
// transaction with the workshop row locked, so the capacity check and the
// insert cannot race against a concurrent enrollment. The composite unique
// index catches duplicate pairs that never even reached the lock.
func insertEnrollmentLocked(tx *gorm.DB, enrollment *model.Enrollment) error {
	var workshop model.Workshop
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&workshop, "id = ?", enrollment.WorkshopID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrWorkshopNotFound
		}
		return fmt.Errorf("locking workshop: %w", err)
	}

	if workshop.MaxParticipants != nil {
		var count int64
		if err := tx.Model(&model.Enrollment{}).
			Where("workshop_id = ?", enrollment.WorkshopID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("counting enrollments: %w", err)
		}
		if count >= int64(*workshop.MaxParticipants) {
			return domain.ErrWorkshopFull
		}
	}

	if err := tx.Create(enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrAlreadyEnrolled
		}
		return fmt.Errorf("creating enrollment: %w", err)
	}

	return nil
}

func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *model.Enrollment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return insertEnrollmentLocked(tx, enrollment)
	})

	if err != nil {
		if errors.Is(err, domain.ErrWorkshopNotFound) ||
			errors.Is(err, domain.ErrWorkshopFull) ||
			errors.Is(err, domain.ErrAlreadyEnrolled) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

func (r *EnrollmentRepository) Delete(ctx context.Context, workshopID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("workshop_id = ? AND user_id = ?", workshopID, userID).
		Delete(&model.Enrollment{})
	if result.Error != nil {
		return fmt.Errorf("deleting enrollment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrEnrollmentNotFound
	}
	return nil
}

func (r *EnrollmentRepository) Find(ctx context.Context, workshopID, userID uuid.UUID) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	if err := r.db.WithContext(ctx).
		Where("workshop_id = ? AND user_id = ?", workshopID, userID).
		First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("finding enrollment: %w", err)
	}
	return &enrollment, nil
}

func (r *EnrollmentRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Enrollment, error) {
	var enrollments []*model.Enrollment
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Workshop").
		Preload("Workshop.Owner").
		Order("created_at DESC").
		Find(&enrollments).Error; err != nil {
		return nil, fmt.Errorf("finding user enrollments: %w", err)
	}
	return enrollments, nil
}

func (r *EnrollmentRepository) FindByWorkshop(ctx context.Context, workshopID uuid.UUID) ([]*model.Enrollment, error) {
	var enrollments []*model.Enrollment
	if err := r.db.WithContext(ctx).
		Where("workshop_id = ?", workshopID).
		Preload("User").
		Order("created_at ASC").
		Find(&enrollments).Error; err != nil {
		return nil, fmt.Errorf("finding workshop enrollments: %w", err)
	}
	return enrollments, nil
}

func (r *EnrollmentRepository) CountByWorkshop(ctx context.Context, workshopID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Enrollment{}).
		Where("workshop_id = ?", workshopID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting workshop enrollments: %w", err)
	}
	return count, nil
}

// CountByOwner counts enrollments across every workshop the owner runs.
func (r *EnrollmentRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Enrollment{}).
		Joins("JOIN workshops ON workshops.id = enrollments.workshop_id").
		Where("workshops.owner_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting owner enrollments: %w", err)
	}
	return count, nil
}

// FindStudentIDsByOwner returns the distinct users enrolled in any workshop
// the owner runs. Used for new-workshop announcements.
func (r *EnrollmentRepository) FindStudentIDsByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&model.Enrollment{}).
		Joins("JOIN workshops ON workshops.id = enrollments.workshop_id").
		Where("workshops.owner_id = ?", ownerID).
		Distinct("enrollments.user_id").
		Pluck("enrollments.user_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("finding owner students: %w", err)
	}
	return ids, nil
}

func (r *EnrollmentRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Enrollment{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting enrollments: %w", err)
	}
	return count, nil
}
