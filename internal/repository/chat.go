// internal/repository/chat.go
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
	"gorm.io/gorm/clause"
)

type ChatRepositoryIface interface {
	CreateMessage(ctx context.Context, message *model.ChatMessage) error
	FindMessageByID(ctx context.Context, id uuid.UUID) (*model.ChatMessage, error)
	UpdateMessage(ctx context.Context, message *model.ChatMessage) error
	FindWorkshopMessages(ctx context.Context, workshopID uuid.UUID, offset, limit int) ([]*model.ChatMessage, int64, error)
	FindLatestMessage(ctx context.Context, workshopID uuid.UUID) (*model.ChatMessage, error)
	CountSince(ctx context.Context, workshopID, userID uuid.UUID, since time.Time) (int64, error)
	FindRead(ctx context.Context, workshopID, userID uuid.UUID) (*model.ChatRead, error)
	TouchRead(ctx context.Context, workshopID, userID uuid.UUID, at time.Time) error
}

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

func (r *ChatRepository) CreateMessage(ctx context.Context, message *model.ChatMessage) error {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return fmt.Errorf("creating chat message: %w", err)
	}

	// Reload with the user relation so callers can broadcast a complete row.
	if err := r.db.WithContext(ctx).Preload("User").First(message, "id = ?", message.ID).Error; err != nil {
		return fmt.Errorf("reloading chat message: %w", err)
	}

	return nil
}

func (r *ChatRepository) FindMessageByID(ctx context.Context, id uuid.UUID) (*model.ChatMessage, error) {
	var message model.ChatMessage
	if err := r.db.WithContext(ctx).Preload("User").First(&message, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMessageNotFound
		}
		return nil, fmt.Errorf("finding chat message: %w", err)
	}
	return &message, nil
}

func (r *ChatRepository) UpdateMessage(ctx context.Context, message *model.ChatMessage) error {
	if err := r.db.WithContext(ctx).Save(message).Error; err != nil {
		return fmt.Errorf("updating chat message: %w", err)
	}
	return nil
}

// FindWorkshopMessages returns the requested page newest-first; soft-deleted
// messages are excluded.
func (r *ChatRepository) FindWorkshopMessages(ctx context.Context, workshopID uuid.UUID, offset, limit int) ([]*model.ChatMessage, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.ChatMessage{}).
		Where("workshop_id = ? AND is_deleted = ?", workshopID, false)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("counting chat messages: %w", err)
	}

	var messages []*model.ChatMessage
	if err := query.Preload("User").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&messages).Error; err != nil {
		return nil, 0, fmt.Errorf("finding workshop messages: %w", err)
	}

	return messages, count, nil
}

func (r *ChatRepository) FindLatestMessage(ctx context.Context, workshopID uuid.UUID) (*model.ChatMessage, error) {
	var message model.ChatMessage
	if err := r.db.WithContext(ctx).
		Where("workshop_id = ? AND is_deleted = ?", workshopID, false).
		Preload("User").
		Order("created_at DESC").
		First(&message).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMessageNotFound
		}
		return nil, fmt.Errorf("finding latest message: %w", err)
	}
	return &message, nil
}

// CountSince counts visible messages from other users created after the
// given instant. This is the unread count for a chat.
func (r *ChatRepository) CountSince(ctx context.Context, workshopID, userID uuid.UUID, since time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.ChatMessage{}).
		Where("workshop_id = ? AND user_id <> ? AND is_deleted = ? AND created_at > ?",
			workshopID, userID, false, since).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting unread messages: %w", err)
	}
	return count, nil
}

func (r *ChatRepository) FindRead(ctx context.Context, workshopID, userID uuid.UUID) (*model.ChatRead, error) {
	var read model.ChatRead
	if err := r.db.WithContext(ctx).
		Where("workshop_id = ? AND user_id = ?", workshopID, userID).
		First(&read).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("finding chat read marker: %w", err)
	}
	return &read, nil
}

// TouchRead upserts the read marker for a (workshop, user) pair.
func (r *ChatRepository) TouchRead(ctx context.Context, workshopID, userID uuid.UUID, at time.Time) error {
	read := model.ChatRead{
		WorkshopID: workshopID,
		UserID:     userID,
		LastReadAt: at,
	}

	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "workshop_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_read_at", "updated_at"}),
	}).Create(&read).Error; err != nil {
		return fmt.Errorf("touching chat read marker: %w", err)
	}

	return nil
}
