// internal/model/payment.go
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentMethod string

const (
	MethodCreditCard PaymentMethod = "credit_card"
	MethodDebitCard  PaymentMethod = "debit_card"
	MethodPix        PaymentMethod = "pix"
	MethodBoleto     PaymentMethod = "boleto"
)

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "PENDING"
	PaymentProcessing PaymentStatus = "PROCESSING"
	PaymentCompleted  PaymentStatus = "COMPLETED"
	PaymentFailed     PaymentStatus = "FAILED"
	PaymentRefunded   PaymentStatus = "REFUNDED"
)

type Payment struct {
	ID              uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID     `gorm:"type:uuid;not null;index" json:"user_id"`
	WorkshopID      uuid.UUID     `gorm:"type:uuid;not null;index" json:"workshop_id"`
	Amount          float64       `gorm:"type:numeric(10,2);not null" json:"amount"`
	Method          PaymentMethod `gorm:"type:text;not null" json:"method"`
	Status          PaymentStatus `gorm:"type:text;not null;default:'PENDING'" json:"status"`
	PaymentIntentID string        `gorm:"type:text" json:"payment_intent_id"`
	TransactionID   string        `gorm:"type:text" json:"transaction_id"`
	FailureReason   string        `gorm:"type:text" json:"failure_reason,omitempty"`
	PaidAt          *time.Time    `json:"paid_at"`
	RefundedAt      *time.Time    `json:"refunded_at"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`

	User     User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Workshop Workshop `gorm:"foreignKey:WorkshopID" json:"workshop,omitempty"`
}

// BeforeCreate hook for Payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	validMethods := map[PaymentMethod]bool{
		MethodCreditCard: true,
		MethodDebitCard:  true,
		MethodPix:        true,
		MethodBoleto:     true,
	}

	if !validMethods[p.Method] {
		return fmt.Errorf("invalid payment method: %s", p.Method)
	}

	return nil
}
