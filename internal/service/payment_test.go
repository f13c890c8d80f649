package service_test

import (
	"context"
	"errors"
	"strings"
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

const validCard = "4242424242424242"

func TestCreatePayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	workshopID := uuid.New()

	paidWorkshop := &model.Workshop{
		ID:       workshopID,
		Title:    "Watercolor Landscapes",
		Price:    150.00,
		StartsAt: time.Now().Add(72 * time.Hour),
		EndsAt:   time.Now().Add(75 * time.Hour),
		OwnerID:  uuid.New(),
	}

	t.Run("opens a pending payment", func(t *testing.T) {
		repo := mocks.NewMockPaymentRepositoryIface(ctrl)
		workshopRepo := mocks.NewMockWorkshopRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

		workshopRepo.EXPECT().
			FindByID(gomock.Any(), workshopID).
			Return(paidWorkshop, nil)
		enrollmentRepo.EXPECT().
			Find(gomock.Any(), workshopID, userID).
			Return(nil, domain.ErrEnrollmentNotFound)
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)

		svc := service.NewPaymentService(repo, workshopRepo, enrollmentRepo, service.NewMockProcessor(1, 0, 1), nil)

		payment, err := svc.CreatePayment(context.Background(), userID, service.CreatePaymentInput{
			WorkshopID: workshopID,
			Amount:     150.00,
			Method:     model.MethodCreditCard,
		})

		assert.NoError(t, err)
		assert.Equal(t, model.PaymentPending, payment.Status)
		assert.True(t, strings.HasPrefix(payment.PaymentIntentID, "pi_"))
	})

	t.Run("rejects an amount that differs from the price", func(t *testing.T) {
		repo := mocks.NewMockPaymentRepositoryIface(ctrl)
		workshopRepo := mocks.NewMockWorkshopRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

		workshopRepo.EXPECT().
			FindByID(gomock.Any(), workshopID).
			Return(paidWorkshop, nil)
		enrollmentRepo.EXPECT().
			Find(gomock.Any(), workshopID, userID).
			Return(nil, domain.ErrEnrollmentNotFound)

		svc := service.NewPaymentService(repo, workshopRepo, enrollmentRepo, service.NewMockProcessor(1, 0, 1), nil)

		_, err := svc.CreatePayment(context.Background(), userID, service.CreatePaymentInput{
			WorkshopID: workshopID,
			Amount:     149.99,
			Method:     model.MethodPix,
		})

		assert.ErrorIs(t, err, domain.ErrAmountMismatch)
	})

	t.Run("rejects a second seat for an enrolled user", func(t *testing.T) {
		repo := mocks.NewMockPaymentRepositoryIface(ctrl)
		workshopRepo := mocks.NewMockWorkshopRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

		workshopRepo.EXPECT().
			FindByID(gomock.Any(), workshopID).
			Return(paidWorkshop, nil)
		enrollmentRepo.EXPECT().
			Find(gomock.Any(), workshopID, userID).
			Return(&model.Enrollment{WorkshopID: workshopID, UserID: userID}, nil)

		svc := service.NewPaymentService(repo, workshopRepo, enrollmentRepo, service.NewMockProcessor(1, 0, 1), nil)

		_, err := svc.CreatePayment(context.Background(), userID, service.CreatePaymentInput{
			WorkshopID: workshopID,
			Amount:     150.00,
			Method:     model.MethodCreditCard,
		})

		assert.ErrorIs(t, err, domain.ErrAlreadyEnrolled)
	})

	t.Run("rejects a full workshop", func(t *testing.T) {
		repo := mocks.NewMockPaymentRepositoryIface(ctrl)
		workshopRepo := mocks.NewMockWorkshopRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

		maxParticipants := 5
		capped := *paidWorkshop
		capped.MaxParticipants = &maxParticipants

		workshopRepo.EXPECT().
			FindByID(gomock.Any(), workshopID).
			Return(&capped, nil)
		enrollmentRepo.EXPECT().
			Find(gomock.Any(), workshopID, userID).
			Return(nil, domain.ErrEnrollmentNotFound)
		enrollmentRepo.EXPECT().
			CountByWorkshop(gomock.Any(), workshopID).
			Return(int64(5), nil)

		svc := service.NewPaymentService(repo, workshopRepo, enrollmentRepo, service.NewMockProcessor(1, 0, 1), nil)

		_, err := svc.CreatePayment(context.Background(), userID, service.CreatePaymentInput{
			WorkshopID: workshopID,
			Amount:     150.00,
			Method:     model.MethodCreditCard,
		})

		assert.ErrorIs(t, err, domain.ErrWorkshopFull)
	})

	t.Run("rejects a started workshop", func(t *testing.T) {
		repo := mocks.NewMockPaymentRepositoryIface(ctrl)
		workshopRepo := mocks.NewMockWorkshopRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

		started := *paidWorkshop
		started.StartsAt = time.Now().Add(-time.Hour)

		workshopRepo.EXPECT().
			FindByID(gomock.Any(), workshopID).
			Return(&started, nil)

		svc := service.NewPaymentService(repo, workshopRepo, enrollmentRepo, service.NewMockProcessor(1, 0, 1), nil)

		_, err := svc.CreatePayment(context.Background(), userID, service.CreatePaymentInput{
			WorkshopID: workshopID,
			Amount:     150.00,
			Method:     model.MethodCreditCard,
		})

		assert.ErrorIs(t, err, domain.ErrWorkshopStarted)
	})
}

func TestProcessPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	paymentID := uuid.New()
	workshopID := uuid.New()

	pending := func() *model.Payment {
		return &model.Payment{
			ID:         paymentID,
			UserID:     userID,
			WorkshopID: workshopID,
			Amount:     150.00,
			Method:     model.MethodCreditCard,
			Status:     model.PaymentPending,
		}
	}

	t.Run("approval completes the payment and the enrollment together", func(t *testing.T) {
		repo := mocks.NewMockPaymentRepositoryIface(ctrl)
		workshopRepo := mocks.NewMockWorkshopRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

		repo.EXPECT().
			FindByID(gomock.Any(), paymentID).
			Return(pending(), nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			Return(nil)
		repo.EXPECT().
			CompleteWithEnrollment(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		// A success rate of 1 makes every well-formed attempt approve.
		svc := service.NewPaymentService(repo, workshopRepo, enrollmentRepo, service.NewMockProcessor(1, 0, 7), nil)

		payment, err := svc.ProcessPayment(context.Background(), paymentID, userID, service.ProcessPaymentInput{
			Details: validCard,
		})

		assert.NoError(t, err)
		assert.Equal(t, model.PaymentCompleted, payment.Status)
		assert.NotNil(t, payment.PaidAt)
		assert.True(t, strings.HasPrefix(payment.TransactionID, "txn_"))
	})

	t.Run("a decline leaves the payment failed without an error", func(t *testing.T) {
		repo := mocks.NewMockPaymentRepositoryIface(ctrl)
		workshopRepo := mocks.NewMockWorkshopRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

		repo.EXPECT().
			FindByID(gomock.Any(), paymentID).
			Return(pending(), nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			Return(nil).
			Times(2)

		svc := service.NewPaymentService(repo, workshopRepo, enrollmentRepo, service.NewMockProcessor(1, 0, 7), nil)

		// Card details shorter than 16 characters are always declined.
		payment, err := svc.ProcessPayment(context.Background(), paymentID, userID, service.ProcessPaymentInput{
			Details: "4242",
		})

		assert.NoError(t, err)
		assert.Equal(t, model.PaymentFailed, payment.Status)
		assert.NotEmpty(t, payment.FailureReason)
	})

	t.Run("a seat lost during settlement fails the payment", func(t *testing.T) {
		repo := mocks.NewMockPaymentRepositoryIface(ctrl)
		workshopRepo := mocks.NewMockWorkshopRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

		var statuses []model.PaymentStatus

		repo.EXPECT().
			FindByID(gomock.Any(), paymentID).
			Return(pending(), nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *model.Payment) error {
				statuses = append(statuses, p.Status)
				return nil
			}).
			Times(2)
		repo.EXPECT().
			CompleteWithEnrollment(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(domain.ErrWorkshopFull)

		svc := service.NewPaymentService(repo, workshopRepo, enrollmentRepo, service.NewMockProcessor(1, 0, 7), nil)

		payment, err := svc.ProcessPayment(context.Background(), paymentID, userID, service.ProcessPaymentInput{
			Details: validCard,
		})

		assert.ErrorIs(t, err, domain.ErrWorkshopFull)
		assert.Equal(t, []model.PaymentStatus{model.PaymentProcessing, model.PaymentFailed}, statuses)
		assert.Equal(t, model.PaymentFailed, payment.Status)
		assert.NotEmpty(t, payment.FailureReason)
		assert.Nil(t, payment.PaidAt)
		assert.Empty(t, payment.TransactionID)
	})

	t.Run("a settlement failure reopens the payment for retry", func(t *testing.T) {
		repo := mocks.NewMockPaymentRepositoryIface(ctrl)
		workshopRepo := mocks.NewMockWorkshopRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

		var statuses []model.PaymentStatus

		repo.EXPECT().
			FindByID(gomock.Any(), paymentID).
			Return(pending(), nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *model.Payment) error {
				statuses = append(statuses, p.Status)
				return nil
			}).
			Times(2)
		repo.EXPECT().
			CompleteWithEnrollment(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("connection reset"))

		svc := service.NewPaymentService(repo, workshopRepo, enrollmentRepo, service.NewMockProcessor(1, 0, 7), nil)

		_, err := svc.ProcessPayment(context.Background(), paymentID, userID, service.ProcessPaymentInput{
			Details: validCard,
		})

		assert.Error(t, err)
		assert.Equal(t, []model.PaymentStatus{model.PaymentProcessing, model.PaymentPending}, statuses)
	})

	t.Run("a cancelled request reopens the payment", func(t *testing.T) {
		repo := mocks.NewMockPaymentRepositoryIface(ctrl)
		workshopRepo := mocks.NewMockWorkshopRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

		var statuses []model.PaymentStatus

		repo.EXPECT().
			FindByID(gomock.Any(), paymentID).
			Return(pending(), nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *model.Payment) error {
				statuses = append(statuses, p.Status)
				return nil
			}).
			Times(2)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// A non-zero delay makes the processor observe the cancellation.
		svc := service.NewPaymentService(repo, workshopRepo, enrollmentRepo, service.NewMockProcessor(1, 10*time.Millisecond, 7), nil)

		_, err := svc.ProcessPayment(ctx, paymentID, userID, service.ProcessPaymentInput{
			Details: validCard,
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, []model.PaymentStatus{model.PaymentProcessing, model.PaymentPending}, statuses)
	})

	t.Run("only the payer may process", func(t *testing.T) {
		repo := mocks.NewMockPaymentRepositoryIface(ctrl)
		workshopRepo := mocks.NewMockWorkshopRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

		repo.EXPECT().
			FindByID(gomock.Any(), paymentID).
			Return(pending(), nil)

		svc := service.NewPaymentService(repo, workshopRepo, enrollmentRepo, service.NewMockProcessor(1, 0, 7), nil)

		_, err := svc.ProcessPayment(context.Background(), paymentID, uuid.New(), service.ProcessPaymentInput{
			Details: validCard,
		})

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("only pending payments are processable", func(t *testing.T) {
		repo := mocks.NewMockPaymentRepositoryIface(ctrl)
		workshopRepo := mocks.NewMockWorkshopRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

		completed := pending()
		completed.Status = model.PaymentCompleted

		repo.EXPECT().
			FindByID(gomock.Any(), paymentID).
			Return(completed, nil)

		svc := service.NewPaymentService(repo, workshopRepo, enrollmentRepo, service.NewMockProcessor(1, 0, 7), nil)

		_, err := svc.ProcessPayment(context.Background(), paymentID, userID, service.ProcessPaymentInput{
			Details: validCard,
		})

		assert.ErrorIs(t, err, domain.ErrInvalidPaymentState)
	})
}

func TestRefundPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	paymentID := uuid.New()
	workshopID := uuid.New()

	completed := func() *model.Payment {
		paidAt := time.Now().Add(-time.Hour)
		return &model.Payment{
			ID:         paymentID,
			UserID:     userID,
			WorkshopID: workshopID,
			Amount:     150.00,
			Status:     model.PaymentCompleted,
			PaidAt:     &paidAt,
		}
	}

	t.Run("refund inside the window removes the enrollment", func(t *testing.T) {
		repo := mocks.NewMockPaymentRepositoryIface(ctrl)
		workshopRepo := mocks.NewMockWorkshopRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

		repo.EXPECT().
			FindByID(gomock.Any(), paymentID).
			Return(completed(), nil)
		workshopRepo.EXPECT().
			FindByID(gomock.Any(), workshopID).
			Return(&model.Workshop{ID: workshopID, StartsAt: time.Now().Add(48 * time.Hour)}, nil)
		repo.EXPECT().
			RefundWithUnenroll(gomock.Any(), gomock.Any()).
			Return(nil)

		svc := service.NewPaymentService(repo, workshopRepo, enrollmentRepo, service.NewMockProcessor(1, 0, 7), nil)

		payment, err := svc.RefundPayment(context.Background(), paymentID, userID)

		assert.NoError(t, err)
		assert.Equal(t, model.PaymentRefunded, payment.Status)
		assert.NotNil(t, payment.RefundedAt)
	})

	t.Run("window closes 24 hours before the start", func(t *testing.T) {
		repo := mocks.NewMockPaymentRepositoryIface(ctrl)
		workshopRepo := mocks.NewMockWorkshopRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

		repo.EXPECT().
			FindByID(gomock.Any(), paymentID).
			Return(completed(), nil)
		workshopRepo.EXPECT().
			FindByID(gomock.Any(), workshopID).
			Return(&model.Workshop{ID: workshopID, StartsAt: time.Now().Add(2 * time.Hour)}, nil)

		svc := service.NewPaymentService(repo, workshopRepo, enrollmentRepo, service.NewMockProcessor(1, 0, 7), nil)

		_, err := svc.RefundPayment(context.Background(), paymentID, userID)

		assert.ErrorIs(t, err, domain.ErrRefundWindowClosed)
	})

	t.Run("only completed payments are refundable", func(t *testing.T) {
		repo := mocks.NewMockPaymentRepositoryIface(ctrl)
		workshopRepo := mocks.NewMockWorkshopRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

		failed := completed()
		failed.Status = model.PaymentFailed

		repo.EXPECT().
			FindByID(gomock.Any(), paymentID).
			Return(failed, nil)

		svc := service.NewPaymentService(repo, workshopRepo, enrollmentRepo, service.NewMockProcessor(1, 0, 7), nil)

		_, err := svc.RefundPayment(context.Background(), paymentID, userID)

		assert.ErrorIs(t, err, domain.ErrPaymentNotRefundable)
	})
}
