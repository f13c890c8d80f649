// internal/service/payment_processor.go
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	mrand "math/rand"
	"sync"
	"time"

	"github.com/skillsharehq/skillshare-hub/internal/domain"
	"github.com/skillsharehq/skillshare-hub/internal/model"
)

// ProcessorResult is the outcome of a processing attempt. A declined
// payment is a result, not an error.
type ProcessorResult struct {
	Approved      bool
	TransactionID string
	Reason        string
}

// PaymentProcessor stands in for an external payment gateway.
type PaymentProcessor interface {
	Process(ctx context.Context, method model.PaymentMethod, details string, amount float64) (*ProcessorResult, error)
}

// MockProcessor simulates gateway behavior: an artificial settlement delay,
// trivial method-specific validation, and a configurable approval rate.
type MockProcessor struct {
	successRate float64
	delay       time.Duration

	mu  sync.Mutex
	rng *mrand.Rand
}

// NewMockProcessor builds a processor approving roughly successRate of
// well-formed attempts. The seed makes outcomes reproducible in tests.
func NewMockProcessor(successRate float64, delay time.Duration, seed int64) *MockProcessor {
	return &MockProcessor{
		successRate: successRate,
		delay:       delay,
		rng:         mrand.New(mrand.NewSource(seed)),
	}
}

func (p *MockProcessor) Process(ctx context.Context, method model.PaymentMethod, details string, amount float64) (*ProcessorResult, error) {
	if err := validateDetails(method, details); err != nil {
		return &ProcessorResult{Approved: false, Reason: err.Error()}, nil
	}

	if p.delay > 0 {
		timer := time.NewTimer(p.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	p.mu.Lock()
	roll := p.rng.Float64()
	p.mu.Unlock()

	if roll >= p.successRate {
		return &ProcessorResult{Approved: false, Reason: "payment declined by processor"}, nil
	}

	return &ProcessorResult{
		Approved:      true,
		TransactionID: "txn_" + randomHex(12),
	}, nil
}

func validateDetails(method model.PaymentMethod, details string) error {
	switch method {
	case model.MethodCreditCard, model.MethodDebitCard:
		if len(details) < 16 {
			return fmt.Errorf("%w: card details too short", domain.ErrInvalidPaymentDetails)
		}
	case model.MethodPix, model.MethodBoleto:
		// No upfront validation; these settle out of band.
	default:
		return domain.ErrUnsupportedPayMethod
	}
	return nil
}

// randomHex returns n random bytes hex-encoded, used for the mock intent
// and transaction identifiers.
func randomHex(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		panic(err) // This should never happen
	}
	return hex.EncodeToString(bytes)
}
