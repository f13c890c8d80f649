// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./workshop.go -destination=../mocks/mock_workshop_repository.go -package=mocks WorkshopRepositoryIface
//go:generate mockgen -source=./enrollment.go -destination=../mocks/mock_enrollment_repository.go -package=mocks EnrollmentRepositoryIface
//go:generate mockgen -source=./payment.go -destination=../mocks/mock_payment_repository.go -package=mocks PaymentRepositoryIface
//go:generate mockgen -source=./notification.go -destination=../mocks/mock_notification_repository.go -package=mocks NotificationRepositoryIface
//go:generate mockgen -source=./chat.go -destination=../mocks/mock_chat_repository.go -package=mocks ChatRepositoryIface
//go:generate mockgen -source=./review.go -destination=../mocks/mock_review_repository.go -package=mocks ReviewRepositoryIface
