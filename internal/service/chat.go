// internal/service/chat.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/skillsharehq/skillshare-hub/internal/domain"
	"github.com/skillsharehq/skillshare-hub/internal/model"
	"github.com/skillsharehq/skillshare-hub/internal/repository"
)

// editWindow is how long after creation the author may still edit a message.
const editWindow = 5 * time.Minute

type ChatService struct {
	repo           repository.ChatRepositoryIface
	workshopRepo   repository.WorkshopRepositoryIface
	enrollmentRepo repository.EnrollmentRepositoryIface
	notifier       *NotificationService
	validate       *validator.Validate
	now            func() time.Time
}

func NewChatService(
	repo repository.ChatRepositoryIface,
	workshopRepo repository.WorkshopRepositoryIface,
	enrollmentRepo repository.EnrollmentRepositoryIface,
	notifier *NotificationService,
) *ChatService {
	return &ChatService{
		repo:           repo,
		workshopRepo:   workshopRepo,
		enrollmentRepo: enrollmentRepo,
		notifier:       notifier,
		validate:       validator.New(),
		now:            time.Now,
	}
}

type CreateMessageInput struct {
	WorkshopID    uuid.UUID         `json:"workshop_id" validate:"required"`
	Message       string            `json:"message" validate:"required,max=4000"`
	Type          model.MessageType `json:"type" validate:"omitempty,oneof=text image file"`
	AttachmentURL string            `json:"attachment_url" validate:"omitempty,url"`
}

// checkAccess admits the workshop owner and enrolled users, nobody else.
func (s *ChatService) checkAccess(ctx context.Context, workshopID, userID uuid.UUID) (*model.Workshop, error) {
	workshop, err := s.workshopRepo.FindByID(ctx, workshopID)
	if err != nil {
		return nil, err
	}

	if workshop.OwnerID == userID {
		return workshop, nil
	}

	if _, err := s.enrollmentRepo.Find(ctx, workshopID, userID); err != nil {
		if errors.Is(err, domain.ErrEnrollmentNotFound) {
			return nil, domain.ErrChatAccessDenied
		}
		return nil, err
	}

	return workshop, nil
}

// CheckAccess reports whether the user may read and write this workshop's
// chat. Used by the websocket gateway before joining a room.
func (s *ChatService) CheckAccess(ctx context.Context, workshopID, userID uuid.UUID) error {
	_, err := s.checkAccess(ctx, workshopID, userID)
	return err
}

// CreateMessage posts a message to a workshop chat the sender belongs to.
// Non-text messages must carry an attachment URL.
func (s *ChatService) CreateMessage(ctx context.Context, userID uuid.UUID, input CreateMessageInput) (*model.ChatMessage, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	workshop, err := s.checkAccess(ctx, input.WorkshopID, userID)
	if err != nil {
		return nil, err
	}

	msgType := input.Type
	if msgType == "" {
		msgType = model.MessageText
	}

	if msgType != model.MessageText && input.AttachmentURL == "" {
		return nil, domain.ErrAttachmentRequired
	}

	message := &model.ChatMessage{
		WorkshopID:    input.WorkshopID,
		UserID:        userID,
		Message:       input.Message,
		Type:          msgType,
		AttachmentURL: input.AttachmentURL,
	}

	if err := s.repo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	// The sender has obviously seen their own message.
	if err := s.repo.TouchRead(ctx, input.WorkshopID, userID, message.CreatedAt); err != nil {
		slog.Warn("touching read marker after send", "error", err, "user_id", userID)
	}

	s.notifyParticipants(ctx, workshop, message)

	return message, nil
}

// notifyParticipants fans a new-message notification out to everyone else in
// the chat. Best effort per recipient.
func (s *ChatService) notifyParticipants(ctx context.Context, workshop *model.Workshop, message *model.ChatMessage) {
	if s.notifier == nil {
		return
	}

	enrollments, err := s.enrollmentRepo.FindByWorkshop(ctx, workshop.ID)
	if err != nil {
		slog.Warn("finding enrollments for message notification", "error", err, "workshop_id", workshop.ID)
		return
	}

	recipients := make([]uuid.UUID, 0, len(enrollments)+1)
	for _, enrollment := range enrollments {
		if enrollment.UserID != message.UserID {
			recipients = append(recipients, enrollment.UserID)
		}
	}
	if workshop.OwnerID != message.UserID {
		recipients = append(recipients, workshop.OwnerID)
	}

	for _, recipient := range recipients {
		if _, err := s.notifier.NotifyNewMessage(ctx, recipient, workshop, &message.User); err != nil {
			slog.Warn("sending message notification", "error", err, "user_id", recipient)
		}
	}
}

type EditMessageInput struct {
	Message string `json:"message" validate:"required,max=4000"`
}

// EditMessage lets the author revise a message for five minutes after
// posting it.
func (s *ChatService) EditMessage(ctx context.Context, messageID, userID uuid.UUID, input EditMessageInput) (*model.ChatMessage, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	message, err := s.repo.FindMessageByID(ctx, messageID)
	if err != nil {
		return nil, err
	}

	if message.IsDeleted {
		return nil, domain.ErrMessageNotFound
	}

	if message.UserID != userID {
		return nil, domain.ErrForbidden
	}

	now := s.now()
	if now.Sub(message.CreatedAt) > editWindow {
		return nil, domain.ErrEditWindowExpired
	}

	message.Message = input.Message
	message.IsEdited = true
	message.EditedAt = &now

	if err := s.repo.UpdateMessage(ctx, message); err != nil {
		return nil, err
	}

	return message, nil
}

// DeleteMessage soft-deletes. The author and the workshop owner may delete;
// the row stays for audit but disappears from listings.
func (s *ChatService) DeleteMessage(ctx context.Context, messageID, userID uuid.UUID) (*model.ChatMessage, error) {
	message, err := s.repo.FindMessageByID(ctx, messageID)
	if err != nil {
		return nil, err
	}

	if message.IsDeleted {
		return nil, domain.ErrMessageNotFound
	}

	if message.UserID != userID {
		workshop, err := s.workshopRepo.FindByID(ctx, message.WorkshopID)
		if err != nil {
			return nil, err
		}
		if workshop.OwnerID != userID {
			return nil, domain.ErrForbidden
		}
	}

	message.IsDeleted = true
	if err := s.repo.UpdateMessage(ctx, message); err != nil {
		return nil, err
	}

	return message, nil
}

// MessagePage is one page of chat history in display (oldest-first) order.
type MessagePage struct {
	Messages []*model.ChatMessage `json:"messages"`
	Total    int64                `json:"total"`
	HasMore  bool                 `json:"has_more"`
}

// GetWorkshopMessages returns a page of visible messages oldest-first and
// advances the caller's read marker.
func (s *ChatService) GetWorkshopMessages(ctx context.Context, workshopID, userID uuid.UUID, page, limit int) (*MessagePage, error) {
	if _, err := s.checkAccess(ctx, workshopID, userID); err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}

	messages, total, err := s.repo.FindWorkshopMessages(ctx, workshopID, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	// Fetched newest-first for pagination; displayed oldest-first.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	if err := s.repo.TouchRead(ctx, workshopID, userID, s.now()); err != nil {
		slog.Warn("touching read marker", "error", err, "user_id", userID)
	}

	return &MessagePage{
		Messages: messages,
		Total:    total,
		HasMore:  page*limit < int(total),
	}, nil
}

// ActiveChat is one entry of the user's chat overview.
type ActiveChat struct {
	Workshop      *model.Workshop    `json:"workshop"`
	LatestMessage *model.ChatMessage `json:"latest_message"`
	UnreadCount   int64              `json:"unread_count"`
}

// GetActiveChats lists the chats of workshops the user owns or attends,
// skipping workshops nobody has written in. Unread counts are messages from
// other users since the caller's read marker.
func (s *ChatService) GetActiveChats(ctx context.Context, userID uuid.UUID) ([]*ActiveChat, error) {
	enrollments, err := s.enrollmentRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	owned, _, err := s.workshopRepo.List(ctx, repository.WorkshopFilter{OwnerID: userID}, 0, 200)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]bool)
	workshops := make([]*model.Workshop, 0, len(enrollments)+len(owned))
	for _, enrollment := range enrollments {
		if !seen[enrollment.WorkshopID] {
			seen[enrollment.WorkshopID] = true
			workshop := enrollment.Workshop
			workshops = append(workshops, &workshop)
		}
	}
	for _, workshop := range owned {
		if !seen[workshop.ID] {
			seen[workshop.ID] = true
			workshops = append(workshops, workshop)
		}
	}

	chats := make([]*ActiveChat, 0, len(workshops))
	for _, workshop := range workshops {
		latest, err := s.repo.FindLatestMessage(ctx, workshop.ID)
		if err != nil {
			if errors.Is(err, domain.ErrMessageNotFound) {
				continue
			}
			return nil, err
		}

		since := time.Time{}
		if read, err := s.repo.FindRead(ctx, workshop.ID, userID); err == nil {
			since = read.LastReadAt
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}

		unread, err := s.repo.CountSince(ctx, workshop.ID, userID, since)
		if err != nil {
			return nil, err
		}

		chats = append(chats, &ActiveChat{
			Workshop:      workshop,
			LatestMessage: latest,
			UnreadCount:   unread,
		})
	}

	return chats, nil
}
