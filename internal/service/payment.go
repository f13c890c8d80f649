// internal/service/payment.go
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

// refundWindow is how long before the workshop start refunds stay open.
const refundWindow = 24 * time.Hour

type PaymentService struct {
	repo           repository.PaymentRepositoryIface
	workshopRepo   repository.WorkshopRepositoryIface
	enrollmentRepo repository.EnrollmentRepositoryIface
	processor      PaymentProcessor
	notifier       *NotificationService
	validate       *validator.Validate
	now            func() time.Time
}

func NewPaymentService(
	repo repository.PaymentRepositoryIface,
	workshopRepo repository.WorkshopRepositoryIface,
	enrollmentRepo repository.EnrollmentRepositoryIface,
	processor PaymentProcessor,
	notifier *NotificationService,
) *PaymentService {
	return &PaymentService{
		repo:           repo,
		workshopRepo:   workshopRepo,
		enrollmentRepo: enrollmentRepo,
		processor:      processor,
		notifier:       notifier,
		validate:       validator.New(),
		now:            time.Now,
	}
}

type CreatePaymentInput struct {
	WorkshopID uuid.UUID           `json:"workshop_id" validate:"required"`
	Amount     float64             `json:"amount" validate:"required,gt=0"`
	Method     model.PaymentMethod `json:"method" validate:"required"`
}

// CreatePayment opens a PENDING payment for a workshop seat. The amount
// must match the workshop price exactly.
func (s *PaymentService) CreatePayment(ctx context.Context, userID uuid.UUID, input CreatePaymentInput) (*model.Payment, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	workshop, err := s.workshopRepo.FindByID(ctx, input.WorkshopID)
	if err != nil {
		return nil, err
	}

	if workshop.HasStarted(s.now()) {
		return nil, domain.ErrWorkshopStarted
	}

	enrolled, err := s.enrollmentRepo.Find(ctx, input.WorkshopID, userID)
	if err != nil && !errors.Is(err, domain.ErrEnrollmentNotFound) {
		return nil, err
	}
	if enrolled != nil {
		return nil, domain.ErrAlreadyEnrolled
	}

	if workshop.MaxParticipants != nil {
		count, err := s.enrollmentRepo.CountByWorkshop(ctx, input.WorkshopID)
		if err != nil {
			return nil, err
		}
		if count >= int64(*workshop.MaxParticipants) {
			return nil, domain.ErrWorkshopFull
		}
	}

	if input.Amount != workshop.Price {
		return nil, domain.ErrAmountMismatch
	}

	payment := &model.Payment{
		UserID:          userID,
		WorkshopID:      input.WorkshopID,
		Amount:          input.Amount,
		Method:          input.Method,
		Status:          model.PaymentPending,
		PaymentIntentID: "pi_" + randomHex(12),
	}

	if err := s.repo.Create(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

type ProcessPaymentInput struct {
	Details string `json:"details"`
}

// ProcessPayment runs the simulated processor on a PENDING payment. A
// declined attempt leaves the payment FAILED and is not an error; on
// approval the completion and the enrollment are written atomically. When
// the seat is gone by settlement time the payment fails and the conflict
// is returned; infrastructure failures reopen the payment for retry.
func (s *PaymentService) ProcessPayment(ctx context.Context, paymentID, userID uuid.UUID, input ProcessPaymentInput) (*model.Payment, error) {
	payment, err := s.repo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if payment.UserID != userID {
		return nil, domain.ErrForbidden
	}

	if payment.Status != model.PaymentPending {
		return nil, domain.ErrInvalidPaymentState
	}

	payment.Status = model.PaymentProcessing
	if err := s.repo.Update(ctx, payment); err != nil {
		return nil, err
	}

	result, err := s.processor.Process(ctx, payment.Method, input.Details, payment.Amount)
	if err != nil {
		// Infrastructure failure, not a decline. Reopen the payment so a
		// retry is possible instead of stranding it in PROCESSING.
		s.reopenPayment(ctx, payment)
		return nil, fmt.Errorf("running payment processor: %w", err)
	}

	if !result.Approved {
		payment.Status = model.PaymentFailed
		payment.FailureReason = result.Reason
		if err := s.repo.Update(ctx, payment); err != nil {
			return nil, err
		}
		return payment, nil
	}

	now := s.now()
	payment.Status = model.PaymentCompleted
	payment.PaidAt = &now
	payment.TransactionID = result.TransactionID

	enrollment := &model.Enrollment{
		WorkshopID: payment.WorkshopID,
		UserID:     payment.UserID,
	}

	if err := s.repo.CompleteWithEnrollment(ctx, payment, enrollment); err != nil {
		if errors.Is(err, domain.ErrWorkshopFull) ||
			errors.Is(err, domain.ErrAlreadyEnrolled) ||
			errors.Is(err, domain.ErrWorkshopNotFound) {
			// The seat was lost between creation and settlement. The charge
			// is not kept; record the failure and surface the conflict.
			payment.Status = model.PaymentFailed
			payment.PaidAt = nil
			payment.TransactionID = ""
			payment.FailureReason = err.Error()
			if uerr := s.repo.Update(ctx, payment); uerr != nil {
				return nil, uerr
			}
			return payment, err
		}

		s.reopenPayment(ctx, payment)
		return nil, err
	}

	if s.notifier != nil {
		workshop, werr := s.workshopRepo.FindByID(ctx, payment.WorkshopID)
		if werr != nil {
			slog.Warn("loading workshop for payment notification", "error", werr)
		} else if _, nerr := s.notifier.NotifyPaymentReceived(ctx, userID, payment, workshop); nerr != nil {
			slog.Warn("sending payment notification", "error", nerr, "payment_id", payment.ID)
		}
	}

	return payment, nil
}

// reopenPayment returns a payment stuck in PROCESSING to PENDING after a
// settlement attempt that neither completed nor declined it. Runs detached
// from request cancellation so an aborted request still releases the row.
func (s *PaymentService) reopenPayment(ctx context.Context, payment *model.Payment) {
	payment.Status = model.PaymentPending
	payment.PaidAt = nil
	payment.TransactionID = ""
	if err := s.repo.Update(context.WithoutCancel(ctx), payment); err != nil {
		slog.Warn("reopening payment after settlement failure", "error", err, "payment_id", payment.ID)
	}
}

// RefundPayment reverses a COMPLETED payment while the workshop start is
// still more than 24 hours away, removing the enrollment with it.
func (s *PaymentService) RefundPayment(ctx context.Context, paymentID, userID uuid.UUID) (*model.Payment, error) {
	payment, err := s.repo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if payment.UserID != userID {
		return nil, domain.ErrForbidden
	}

	if payment.Status != model.PaymentCompleted {
		return nil, domain.ErrPaymentNotRefundable
	}

	workshop, err := s.workshopRepo.FindByID(ctx, payment.WorkshopID)
	if err != nil {
		return nil, err
	}

	if s.now().After(workshop.StartsAt.Add(-refundWindow)) {
		return nil, domain.ErrRefundWindowClosed
	}

	now := s.now()
	payment.Status = model.PaymentRefunded
	payment.RefundedAt = &now

	if err := s.repo.RefundWithUnenroll(ctx, payment); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if _, nerr := s.notifier.NotifyRefundProcessed(ctx, userID, payment, workshop); nerr != nil {
			slog.Warn("sending refund notification", "error", nerr, "payment_id", payment.ID)
		}
	}

	return payment, nil
}

func (s *PaymentService) GetUserPayments(ctx context.Context, userID uuid.UUID, page, limit int) ([]*model.Payment, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.repo.FindByUser(ctx, userID, (page-1)*limit, limit)
}

func (s *PaymentService) GetPaymentStats(ctx context.Context, userID uuid.UUID) (*repository.PaymentStats, error) {
	return s.repo.StatsByUser(ctx, userID)
}

// AvailableMethods lists the methods the simulator accepts.
func (s *PaymentService) AvailableMethods() []model.PaymentMethod {
	return []model.PaymentMethod{
		model.MethodCreditCard,
		model.MethodDebitCard,
		model.MethodPix,
		model.MethodBoleto,
	}
}
