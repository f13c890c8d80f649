// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")

	// User-related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")

	// Workshop-related errors
	ErrWorkshopNotFound = errors.New("workshop not found")
	ErrInvalidSchedule  = errors.New("workshop must start before it ends")
	ErrWorkshopInPast   = errors.New("workshop start date is in the past")
	ErrWorkshopStarted  = errors.New("workshop has already started")

	// Enrollment-related errors
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrAlreadyEnrolled    = errors.New("user is already enrolled in this workshop")
	ErrWorkshopFull       = errors.New("workshop has reached maximum participants")
	ErrOwnWorkshop        = errors.New("owner cannot enroll in their own workshop")

	// Payment-related errors
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrAmountMismatch        = errors.New("amount does not match workshop price")
	ErrInvalidPaymentState   = errors.New("payment is not in a processable state")
	ErrPaymentNotRefundable  = errors.New("only completed payments can be refunded")
	ErrRefundWindowClosed    = errors.New("refunds are only allowed more than 24 hours before the workshop")
	ErrUnsupportedPayMethod  = errors.New("unsupported payment method")
	ErrInvalidPaymentDetails = errors.New("invalid payment details")

	// Notification-related errors
	ErrNotificationNotFound = errors.New("notification not found")

	// Chat-related errors
	ErrMessageNotFound    = errors.New("message not found")
	ErrChatAccessDenied   = errors.New("user has no access to this workshop chat")
	ErrEditWindowExpired  = errors.New("messages can only be edited within five minutes")
	ErrAttachmentRequired = errors.New("attachment url is required for non-text messages")

	// Review-related errors
	ErrReviewNotFound      = errors.New("review not found")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
	ErrAlreadyReviewed     = errors.New("user has already reviewed this workshop")
	ErrNotEnrolledToReview = errors.New("only enrolled users can review a workshop")
)
