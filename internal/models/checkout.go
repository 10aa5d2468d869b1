package models

import (
	"strings"
	"time"
)

// CardType classifies a card number by its issuer prefix.
type CardType string

const (
	CardTypeVisa       CardType = "visa"
	CardTypeMastercard CardType = "mastercard"
	CardTypeUnknown    CardType = "unknown"
)

// CheckoutValues holds the raw checkout form fields. A nil field has not
// been touched yet; once set, values are kept in display form by the
// formatters.
type CheckoutValues struct {
	Email      *string `json:"email"`
	CardNumber *string `json:"card_number"`
	CardExpire *string `json:"card_expire"`
	CVV        *string `json:"cvv"`
}

// Touched reports whether every field has been entered at least once.
func (v CheckoutValues) Touched() bool {
	return v.Email != nil && v.CardNumber != nil && v.CardExpire != nil && v.CVV != nil
}

// ValidatedCheckout is the immutable snapshot handed to the success
// callback. All fields are non-empty and already passed validation.
// The CVV is never serialized.
type ValidatedCheckout struct {
	Email      string   `json:"email"`
	CardNumber string   `json:"card_number"`
	CardExpire string   `json:"card_expire"`
	CVV        string   `json:"-"`
	CardType   CardType `json:"card_type"`
}

// LastFour returns the last four digits of the card number.
func (v ValidatedCheckout) LastFour() string {
	digits := strings.ReplaceAll(v.CardNumber, " ", "")
	if len(digits) <= 4 {
		return digits
	}
	return digits[len(digits)-4:]
}

// MaskedCard returns the card number with everything but the last four
// digits masked, for logs and receipts.
func (v ValidatedCheckout) MaskedCard() string {
	digits := strings.ReplaceAll(v.CardNumber, " ", "")
	if len(digits) <= 4 {
		return digits
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}

// CheckoutAttempt records a single successful submit.
type CheckoutAttempt struct {
	ID        string            `json:"id"`
	CreatedAt time.Time         `json:"created_at"`
	Values    ValidatedCheckout `json:"values"`
}
