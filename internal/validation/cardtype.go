package validation

import (
	"strconv"
	"strings"

	"checkout/internal/format"
	"checkout/internal/models"
)

// DetectCardType classifies a card number (formatted or not) by its
// issuer prefix. Only the schemes the checkout accepts are recognized:
// visa starts with 4, mastercard with 51-55 or 2221-2720.
func DetectCardType(number string) models.CardType {
	digits := format.Digits(number)
	switch {
	case strings.HasPrefix(digits, "4"):
		return models.CardTypeVisa
	case hasMastercardPrefix(digits):
		return models.CardTypeMastercard
	default:
		return models.CardTypeUnknown
	}
}

func hasMastercardPrefix(digits string) bool {
	if len(digits) >= 2 {
		if p, err := strconv.Atoi(digits[:2]); err == nil && p >= 51 && p <= 55 {
			return true
		}
	}
	if len(digits) >= 4 {
		if p, err := strconv.Atoi(digits[:4]); err == nil && p >= 2221 && p <= 2720 {
			return true
		}
	}
	return false
}
