package validation

import (
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"checkout/internal/format"
	"checkout/internal/models"
)

// User-facing messages, one per rule.
const (
	MsgRequired        = "Required"
	MsgInvalidEmail    = "Must be a valid email"
	MsgInvalidCard     = "Must be a valid card"
	MsgUnsupportedCard = "Must be either visa or mastercard"
	MsgExpiredCard     = "This card is expired try new card"
	MsgNumbersOnly     = "Numbers only"
	MsgMaxDigits       = "Maximum 3 digits"
)

// validate backs the email grammar check.
var validate = validator.New()

// emailRegex narrows the grammar to local@domain with a dotted domain
// and no spaces, which is stricter than the RFC on bare hostnames.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Checkout runs all four field rules against a value snapshot. Fields
// never short-circuit each other; a nil field is untouched and yields no
// errors (AutoInvalid accounts for it instead). Within a field, rules
// apply in priority order and stop at the first failure.
func Checkout(values models.CheckoutValues, now time.Time) *Validator {
	v := New()
	if values.Email != nil {
		v.Email(FieldEmail, *values.Email)
	}
	if values.CardNumber != nil {
		v.CardNumber(FieldCardNumber, *values.CardNumber)
	}
	if values.CardExpire != nil {
		v.CardExpire(FieldCardExpire, *values.CardExpire, now)
	}
	if values.CVV != nil {
		v.CVV(FieldCVV, *values.CVV)
	}
	return v
}

// AutoInvalid reports whether the submit control must stay disabled:
// true while any field has errors or any field is still untouched.
func AutoInvalid(values models.CheckoutValues, v *Validator) bool {
	return !values.Touched() || !v.Valid()
}

// Email requires a non-empty address matching a standard email grammar.
func (v *Validator) Email(field, email string) {
	if strings.TrimSpace(email) == "" {
		v.AddError(field, MsgRequired)
		return
	}
	ok := emailRegex.MatchString(email) && validate.Var(email, "email") == nil
	v.Check(ok, field, MsgInvalidEmail)
}

// CardNumber requires a card number that passes the Luhn checksum and
// belongs to an accepted scheme. Spaces from the formatter are ignored.
func (v *Validator) CardNumber(field, number string) {
	if strings.TrimSpace(number) == "" {
		v.AddError(field, MsgRequired)
		return
	}
	digits := format.Digits(number)
	if !luhnValid(digits) {
		v.AddError(field, MsgInvalidCard)
		return
	}
	v.Check(DetectCardType(digits) != models.CardTypeUnknown, field, MsgUnsupportedCard)
}

// CardExpire requires an "MM / YY" date no earlier than the current
// year-month. Malformed input reads as an expired card rather than a
// separate failure mode.
func (v *Validator) CardExpire(field, expire string, now time.Time) {
	if strings.TrimSpace(expire) == "" {
		v.AddError(field, MsgRequired)
		return
	}
	month, year, ok := format.ParseExpiry(expire)
	if !ok {
		v.AddError(field, MsgExpiredCard)
		return
	}
	expired := year < now.Year() || (year == now.Year() && month < int(now.Month()))
	v.Check(!expired, field, MsgExpiredCard)
}

// CVV requires exactly three digits.
func (v *Validator) CVV(field, cvv string) {
	if cvv == "" {
		v.AddError(field, MsgRequired)
		return
	}
	if !format.IsDigits(cvv) {
		v.AddError(field, MsgNumbersOnly)
		return
	}
	v.Check(len(cvv) == 3, field, MsgMaxDigits)
}
