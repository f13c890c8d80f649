// internal/repository/payment.go
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

// PaymentStats aggregates a user's payment history.
type PaymentStats struct {
	TotalPayments int64   `json:"total_payments"`
	Completed     int64   `json:"completed"`
	Failed        int64   `json:"failed"`
	Refunded      int64   `json:"refunded"`
	TotalSpent    float64 `json:"total_spent"`
}

type PaymentRepositoryIface interface {
	Create(ctx context.Context, payment *model.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Payment, error)
	Update(ctx context.Context, payment *model.Payment) error
	FindByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*model.Payment, int64, error)
	CompleteWithEnrollment(ctx context.Context, payment *model.Payment, enrollment *model.Enrollment) error
	RefundWithUnenroll(ctx context.Context, payment *model.Payment) error
	StatsByUser(ctx context.Context, userID uuid.UUID) (*PaymentStats, error)
	RevenueByOwner(ctx context.Context, ownerID uuid.UUID) (float64, error)
	TotalRevenue(ctx context.Context) (float64, error)
}

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	if err := r.db.WithContext(ctx).Create(payment).Error; err != nil {
		return fmt.Errorf("creating payment: %w", err)
	}
	return nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Payment, error) {
	var payment model.Payment
	if err := r.db.WithContext(ctx).
		Preload("Workshop").
		First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("finding payment: %w", err)
	}
	return &payment, nil
}

func (r *PaymentRepository) Update(ctx context.Context, payment *model.Payment) error {
	if err := r.db.WithContext(ctx).Save(payment).Error; err != nil {
		return fmt.Errorf("updating payment: %w", err)
	}
	return nil
}

func (r *PaymentRepository) FindByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*model.Payment, int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Payment{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("counting payments: %w", err)
	}

	var payments []*model.Payment
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Workshop").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&payments).Error; err != nil {
		return nil, 0, fmt.Errorf("finding user payments: %w", err)
	}

	return payments, count, nil
}

// CompleteWithEnrollment persists the COMPLETED payment and creates the
// enrollment in one transaction. A crash cannot leave a completed payment
// without its enrollment row.
func (r *PaymentRepository) CompleteWithEnrollment(ctx context.Context, payment *model.Payment, enrollment *model.Enrollment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(payment).Error; err != nil {
			return fmt.Errorf("saving payment: %w", err)
		}

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

// RefundWithUnenroll persists the REFUNDED payment and removes the
// enrollment, if any, in one transaction.
func (r *PaymentRepository) RefundWithUnenroll(ctx context.Context, payment *model.Payment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(payment).Error; err != nil {
			return fmt.Errorf("saving payment: %w", err)
		}

		// The enrollment may already be gone if the user unenrolled first.
		if err := tx.Where("workshop_id = ? AND user_id = ?", payment.WorkshopID, payment.UserID).
			Delete(&model.Enrollment{}).Error; err != nil {
			return fmt.Errorf("deleting enrollment: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

func (r *PaymentRepository) StatsByUser(ctx context.Context, userID uuid.UUID) (*PaymentStats, error) {
	stats := &PaymentStats{}

	type statusCount struct {
		Status model.PaymentStatus
		Count  int64
	}

	var counts []statusCount
	if err := r.db.WithContext(ctx).Model(&model.Payment{}).
		Select("status, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&counts).Error; err != nil {
		return nil, fmt.Errorf("counting payments by status: %w", err)
	}

	for _, c := range counts {
		stats.TotalPayments += c.Count
		switch c.Status {
		case model.PaymentCompleted:
			stats.Completed = c.Count
		case model.PaymentFailed:
			stats.Failed = c.Count
		case model.PaymentRefunded:
			stats.Refunded = c.Count
		}
	}

	if err := r.db.WithContext(ctx).Model(&model.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND status = ?", userID, model.PaymentCompleted).
		Scan(&stats.TotalSpent).Error; err != nil {
		return nil, fmt.Errorf("summing completed payments: %w", err)
	}

	return stats, nil
}

func (r *PaymentRepository) RevenueByOwner(ctx context.Context, ownerID uuid.UUID) (float64, error) {
	var revenue float64
	if err := r.db.WithContext(ctx).Model(&model.Payment{}).
		Select("COALESCE(SUM(payments.amount), 0)").
		Joins("JOIN workshops ON workshops.id = payments.workshop_id").
		Where("workshops.owner_id = ? AND payments.status = ?", ownerID, model.PaymentCompleted).
		Scan(&revenue).Error; err != nil {
		return 0, fmt.Errorf("summing owner revenue: %w", err)
	}
	return revenue, nil
}

func (r *PaymentRepository) TotalRevenue(ctx context.Context) (float64, error) {
	var revenue float64
	if err := r.db.WithContext(ctx).Model(&model.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("status = ?", model.PaymentCompleted).
		Scan(&revenue).Error; err != nil {
		return 0, fmt.Errorf("summing revenue: %w", err)
	}
	return revenue, nil
}
