// internal/repository/notification.go
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

type NotificationRepositoryIface interface {
	Create(ctx context.Context, notification *model.Notification) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Notification, error)
	Update(ctx context.Context, notification *model.Notification) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByUser(ctx context.Context, userID uuid.UUID, status model.NotificationStatus, offset, limit int) ([]*model.Notification, int64, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)

	FindPreferences(ctx context.Context, userID uuid.UUID) (*model.NotificationPreferences, error)
	CreatePreferences(ctx context.Context, prefs *model.NotificationPreferences) error
	UpdatePreferences(ctx context.Context, prefs *model.NotificationPreferences) error
}

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, notification *model.Notification) error {
	if err := r.db.WithContext(ctx).Create(notification).Error; err != nil {
		return fmt.Errorf("creating notification: %w", err)
	}
	return nil
}

func (r *NotificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Notification, error) {
	var notification model.Notification
	if err := r.db.WithContext(ctx).First(&notification, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("finding notification: %w", err)
	}
	return &notification, nil
}

func (r *NotificationRepository) Update(ctx context.Context, notification *model.Notification) error {
	if err := r.db.WithContext(ctx).Save(notification).Error; err != nil {
		return fmt.Errorf("updating notification: %w", err)
	}
	return nil
}

func (r *NotificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Notification{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting notification: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepository) FindByUser(ctx context.Context, userID uuid.UUID, status model.NotificationStatus, offset, limit int) ([]*model.Notification, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Notification{}).Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("counting notifications: %w", err)
	}

	var notifications []*model.Notification
	if err := query.Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&notifications).Error; err != nil {
		return nil, 0, fmt.Errorf("finding user notifications: %w", err)
	}

	return notifications, count, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("user_id = ? AND status = ?", userID, model.NotificationUnread).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting unread notifications: %w", err)
	}
	return count, nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("user_id = ? AND status = ?", userID, model.NotificationUnread).
		Update("status", model.NotificationRead)
	if result.Error != nil {
		return 0, fmt.Errorf("marking notifications read: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// DeleteOlderThan physically removes notifications created before the
// cutoff. Used by the retention sweep.
func (r *NotificationRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&model.Notification{})
	if result.Error != nil {
		return 0, fmt.Errorf("deleting old notifications: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *NotificationRepository) FindPreferences(ctx context.Context, userID uuid.UUID) (*model.NotificationPreferences, error) {
	var prefs model.NotificationPreferences
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&prefs).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("finding preferences: %w", err)
	}
	return &prefs, nil
}

func (r *NotificationRepository) CreatePreferences(ctx context.Context, prefs *model.NotificationPreferences) error {
	if err := r.db.WithContext(ctx).Create(prefs).Error; err != nil {
		return fmt.Errorf("creating preferences: %w", err)
	}
	return nil
}

func (r *NotificationRepository) UpdatePreferences(ctx context.Context, prefs *model.NotificationPreferences) error {
	if err := r.db.WithContext(ctx).Save(prefs).Error; err != nil {
		return fmt.Errorf("updating preferences: %w", err)
	}
	return nil
}
