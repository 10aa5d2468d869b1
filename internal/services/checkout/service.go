package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"checkout/internal/models"
	"checkout/internal/validation"
)

// Service validates checkout snapshots and delegates successful submits
// to the configured callback.
type Service struct {
	onSuccess   SubmitFunc
	submitLabel string
	clock       func() time.Time
}

// NewService creates a checkout service from a config.
func NewService(cfg Config) (*Service, error) {
	if cfg.OnSuccess == nil {
		return nil, ErrNoCallback
	}
	if cfg.SubmitLabel == "" {
		cfg.SubmitLabel = DefaultSubmitLabel
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &Service{
		onSuccess:   cfg.OnSuccess,
		submitLabel: cfg.SubmitLabel,
		clock:       cfg.Clock,
	}, nil
}

// Validate runs the field rules against a snapshot.
func (s *Service) Validate(values models.CheckoutValues) *validation.Validator {
	return validation.Checkout(values, s.clock())
}

// Submit validates a snapshot and, when clean, hands a fresh
// CheckoutAttempt to the success callback. A *ValidationError is
// returned when any field fails or is still untouched.
func (s *Service) Submit(ctx context.Context, values models.CheckoutValues) (models.CheckoutAttempt, error) {
	v := s.Validate(values)
	if validation.AutoInvalid(values, v) {
		return models.CheckoutAttempt{}, &ValidationError{Fields: v.Errors}
	}

	attempt := models.CheckoutAttempt{
		ID:        uuid.NewString(),
		CreatedAt: s.clock(),
		Values: models.ValidatedCheckout{
			Email:      *values.Email,
			CardNumber: *values.CardNumber,
			CardExpire: *values.CardExpire,
			CVV:        *values.CVV,
			CardType:   validation.DetectCardType(*values.CardNumber),
		},
	}

	if err := s.onSuccess(ctx, attempt); err != nil {
		return models.CheckoutAttempt{}, fmt.Errorf("success callback: %w", err)
	}
	return attempt, nil
}

// SubmitLabel returns the configured submit control label.
func (s *Service) SubmitLabel() string {
	return s.submitLabel
}
