package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/skillsharehq/skillshare-hub/internal/domain"
	"github.com/skillsharehq/skillshare-hub/internal/mocks"
	"github.com/skillsharehq/skillshare-hub/internal/model"
	"github.com/skillsharehq/skillshare-hub/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCreateChatMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	userID := uuid.New()
	workshopID := uuid.New()

	workshop := &model.Workshop{ID: workshopID, Title: "Knife Skills", OwnerID: ownerID}

	t.Run("enrolled user posts a text message", func(t *testing.T) {
		repo := mocks.NewMockChatRepositoryIface(ctrl)
		workshopRepo := mocks.NewMockWorkshopRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

		workshopRepo.EXPECT().
			FindByID(gomock.Any(), workshopID).
			Return(workshop, nil)
		enrollmentRepo.EXPECT().
			Find(gomock.Any(), workshopID, userID).
			Return(&model.Enrollment{WorkshopID: workshopID, UserID: userID}, nil)
		repo.EXPECT().
			CreateMessage(gomock.Any(), gomock.Any()).
			Return(nil)
		repo.EXPECT().
			TouchRead(gomock.Any(), workshopID, userID, gomock.Any()).
			Return(nil)

		svc := service.NewChatService(repo, workshopRepo, enrollmentRepo, nil)

		message, err := svc.CreateMessage(context.Background(), userID, service.CreateMessageInput{
			WorkshopID: workshopID,
			Message:    "when do we start?",
		})

		assert.NoError(t, err)
		assert.Equal(t, model.MessageText, message.Type)
		assert.Equal(t, userID, message.UserID)
	})

	t.Run("non-text messages need an attachment", func(t *testing.T) {
		repo := mocks.NewMockChatRepositoryIface(ctrl)
		workshopRepo := mocks.NewMockWorkshopRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

		workshopRepo.EXPECT().
			FindByID(gomock.Any(), workshopID).
			Return(workshop, nil)
		enrollmentRepo.EXPECT().
			Find(gomock.Any(), workshopID, userID).
			Return(&model.Enrollment{WorkshopID: workshopID, UserID: userID}, nil)

		svc := service.NewChatService(repo, workshopRepo, enrollmentRepo, nil)

		_, err := svc.CreateMessage(context.Background(), userID, service.CreateMessageInput{
			WorkshopID: workshopID,
			Message:    "see the photo",
			Type:       model.MessageImage,
		})

		assert.ErrorIs(t, err, domain.ErrAttachmentRequired)
	})

	t.Run("outsiders are denied", func(t *testing.T) {
		repo := mocks.NewMockChatRepositoryIface(ctrl)
		workshopRepo := mocks.NewMockWorkshopRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

		stranger := uuid.New()
		workshopRepo.EXPECT().
			FindByID(gomock.Any(), workshopID).
			Return(workshop, nil)
		enrollmentRepo.EXPECT().
			Find(gomock.Any(), workshopID, stranger).
			Return(nil, domain.ErrEnrollmentNotFound)

		svc := service.NewChatService(repo, workshopRepo, enrollmentRepo, nil)

		_, err := svc.CreateMessage(context.Background(), stranger, service.CreateMessageInput{
			WorkshopID: workshopID,
			Message:    "hello",
		})

		assert.ErrorIs(t, err, domain.ErrChatAccessDenied)
	})
}

func TestEditMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	messageID := uuid.New()

	t.Run("author edits within the window", func(t *testing.T) {
		repo := mocks.NewMockChatRepositoryIface(ctrl)
		workshopRepo := mocks.NewMockWorkshopRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

		repo.EXPECT().
			FindMessageByID(gomock.Any(), messageID).
			Return(&model.ChatMessage{
				ID:        messageID,
				UserID:    userID,
				Message:   "typo here",
				CreatedAt: time.Now().Add(-time.Minute),
			}, nil)
		repo.EXPECT().
			UpdateMessage(gomock.Any(), gomock.Any()).
			Return(nil)

		svc := service.NewChatService(repo, workshopRepo, enrollmentRepo, nil)

		message, err := svc.EditMessage(context.Background(), messageID, userID, service.EditMessageInput{
			Message: "fixed now",
		})

		assert.NoError(t, err)
		assert.True(t, message.IsEdited)
		assert.NotNil(t, message.EditedAt)
		assert.Equal(t, "fixed now", message.Message)
	})

	t.Run("edits expire after five minutes", func(t *testing.T) {
		repo := mocks.NewMockChatRepositoryIface(ctrl)
		workshopRepo := mocks.NewMockWorkshopRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

		repo.EXPECT().
			FindMessageByID(gomock.Any(), messageID).
			Return(&model.ChatMessage{
				ID:        messageID,
				UserID:    userID,
				CreatedAt: time.Now().Add(-10 * time.Minute),
			}, nil)

		svc := service.NewChatService(repo, workshopRepo, enrollmentRepo, nil)

		_, err := svc.EditMessage(context.Background(), messageID, userID, service.EditMessageInput{
			Message: "too late",
		})

		assert.ErrorIs(t, err, domain.ErrEditWindowExpired)
	})

	t.Run("only the author may edit", func(t *testing.T) {
		repo := mocks.NewMockChatRepositoryIface(ctrl)
		workshopRepo := mocks.NewMockWorkshopRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

		repo.EXPECT().
			FindMessageByID(gomock.Any(), messageID).
			Return(&model.ChatMessage{
				ID:        messageID,
				UserID:    uuid.New(),
				CreatedAt: time.Now(),
			}, nil)

		svc := service.NewChatService(repo, workshopRepo, enrollmentRepo, nil)

		_, err := svc.EditMessage(context.Background(), messageID, userID, service.EditMessageInput{
			Message: "not mine",
		})

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestDeleteMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	authorID := uuid.New()
	messageID := uuid.New()
	workshopID := uuid.New()

	chatMessage := func() *model.ChatMessage {
		return &model.ChatMessage{
			ID:         messageID,
			WorkshopID: workshopID,
			UserID:     authorID,
			Message:    "off topic",
			CreatedAt:  time.Now(),
		}
	}

	t.Run("author soft-deletes", func(t *testing.T) {
		repo := mocks.NewMockChatRepositoryIface(ctrl)
		workshopRepo := mocks.NewMockWorkshopRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

		repo.EXPECT().
			FindMessageByID(gomock.Any(), messageID).
			Return(chatMessage(), nil)
		repo.EXPECT().
			UpdateMessage(gomock.Any(), gomock.Any()).
			Return(nil)

		svc := service.NewChatService(repo, workshopRepo, enrollmentRepo, nil)

		message, err := svc.DeleteMessage(context.Background(), messageID, authorID)

		assert.NoError(t, err)
		assert.True(t, message.IsDeleted)
	})

	t.Run("workshop owner moderates", func(t *testing.T) {
		repo := mocks.NewMockChatRepositoryIface(ctrl)
		workshopRepo := mocks.NewMockWorkshopRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

		repo.EXPECT().
			FindMessageByID(gomock.Any(), messageID).
			Return(chatMessage(), nil)
		workshopRepo.EXPECT().
			FindByID(gomock.Any(), workshopID).
			Return(&model.Workshop{ID: workshopID, OwnerID: ownerID}, nil)
		repo.EXPECT().
			UpdateMessage(gomock.Any(), gomock.Any()).
			Return(nil)

		svc := service.NewChatService(repo, workshopRepo, enrollmentRepo, nil)

		message, err := svc.DeleteMessage(context.Background(), messageID, ownerID)

		assert.NoError(t, err)
		assert.True(t, message.IsDeleted)
	})

	t.Run("other participants may not delete", func(t *testing.T) {
		repo := mocks.NewMockChatRepositoryIface(ctrl)
		workshopRepo := mocks.NewMockWorkshopRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

		stranger := uuid.New()
		repo.EXPECT().
			FindMessageByID(gomock.Any(), messageID).
			Return(chatMessage(), nil)
		workshopRepo.EXPECT().
			FindByID(gomock.Any(), workshopID).
			Return(&model.Workshop{ID: workshopID, OwnerID: ownerID}, nil)

		svc := service.NewChatService(repo, workshopRepo, enrollmentRepo, nil)

		_, err := svc.DeleteMessage(context.Background(), messageID, stranger)

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestGetWorkshopMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	workshopID := uuid.New()

	t.Run("page comes back oldest-first with the read marker advanced", func(t *testing.T) {
		repo := mocks.NewMockChatRepositoryIface(ctrl)
		workshopRepo := mocks.NewMockWorkshopRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

		workshopRepo.EXPECT().
			FindByID(gomock.Any(), workshopID).
			Return(&model.Workshop{ID: workshopID, OwnerID: ownerID}, nil)

		newest := &model.ChatMessage{Message: "third", CreatedAt: time.Now()}
		middle := &model.ChatMessage{Message: "second", CreatedAt: time.Now().Add(-time.Minute)}
		oldest := &model.ChatMessage{Message: "first", CreatedAt: time.Now().Add(-2 * time.Minute)}

		repo.EXPECT().
			FindWorkshopMessages(gomock.Any(), workshopID, 0, 3).
			Return([]*model.ChatMessage{newest, middle, oldest}, int64(5), nil)
		repo.EXPECT().
			TouchRead(gomock.Any(), workshopID, ownerID, gomock.Any()).
			Return(nil)

		svc := service.NewChatService(repo, workshopRepo, enrollmentRepo, nil)

		page, err := svc.GetWorkshopMessages(context.Background(), workshopID, ownerID, 1, 3)

		assert.NoError(t, err)
		assert.Equal(t, "first", page.Messages[0].Message)
		assert.Equal(t, "third", page.Messages[2].Message)
		assert.Equal(t, int64(5), page.Total)
		assert.True(t, page.HasMore)
	})
}

func TestGetActiveChats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	enrolledID := uuid.New()
	quietID := uuid.New()

	t.Run("unread counts run from the read marker and silent chats are skipped", func(t *testing.T) {
		repo := mocks.NewMockChatRepositoryIface(ctrl)
		workshopRepo := mocks.NewMockWorkshopRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

		enrollmentRepo.EXPECT().
			FindByUser(gomock.Any(), userID).
			Return([]*model.Enrollment{
				{WorkshopID: enrolledID, UserID: userID, Workshop: model.Workshop{ID: enrolledID, Title: "Active"}},
				{WorkshopID: quietID, UserID: userID, Workshop: model.Workshop{ID: quietID, Title: "Quiet"}},
			}, nil)
		workshopRepo.EXPECT().
			List(gomock.Any(), gomock.Any(), 0, 200).
			Return(nil, int64(0), nil)

		lastRead := time.Now().Add(-time.Hour)
		repo.EXPECT().
			FindLatestMessage(gomock.Any(), enrolledID).
			Return(&model.ChatMessage{WorkshopID: enrolledID, Message: "latest"}, nil)
		repo.EXPECT().
			FindRead(gomock.Any(), enrolledID, userID).
			Return(&model.ChatRead{WorkshopID: enrolledID, UserID: userID, LastReadAt: lastRead}, nil)
		repo.EXPECT().
			CountSince(gomock.Any(), enrolledID, userID, lastRead).
			Return(int64(4), nil)

		repo.EXPECT().
			FindLatestMessage(gomock.Any(), quietID).
			Return(nil, domain.ErrMessageNotFound)

		svc := service.NewChatService(repo, workshopRepo, enrollmentRepo, nil)

		chats, err := svc.GetActiveChats(context.Background(), userID)

		assert.NoError(t, err)
		assert.Len(t, chats, 1)
		assert.Equal(t, enrolledID, chats[0].Workshop.ID)
		assert.Equal(t, int64(4), chats[0].UnreadCount)
		assert.Equal(t, "latest", chats[0].LatestMessage.Message)
	})
}
