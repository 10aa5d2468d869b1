package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"checkout/internal/format"
	"checkout/internal/models"
	"checkout/internal/services/checkout"
	"checkout/internal/utils/response"
	"checkout/internal/validation"
)

// CheckoutRequest mirrors the form fields. Absent fields stay nil, which
// marks them untouched rather than empty.
type CheckoutRequest struct {
	Email      *string `json:"email"`
	CardNumber *string `json:"card_number"`
	CardExpire *string `json:"card_expire"`
	CVV        *string `json:"cvv"`
}

// values runs the formatters over the provided fields, the same
// normalization the form applies on each keystroke.
func (r CheckoutRequest) values() models.CheckoutValues {
	v := models.CheckoutValues{Email: r.Email, CVV: r.CVV}
	if r.CardNumber != nil {
		formatted := format.CardNumber(*r.CardNumber)
		v.CardNumber = &formatted
	}
	if r.CardExpire != nil {
		formatted := format.CardExpiry(*r.CardExpire)
		v.CardExpire = &formatted
	}
	return v
}

type CheckoutHandler struct {
	svc *checkout.Service
}

func NewCheckoutHandler(svc *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

// Validate runs the field rules over a snapshot and reports per-field
// errors, the derived card type and the submit gate. It never fails on
// invalid fields; the outcome is the payload.
func (h *CheckoutHandler) Validate(c *fiber.Ctx) error {
	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	values := req.values()
	v := h.svc.Validate(values)

	cardType := models.CardTypeUnknown
	if values.CardNumber != nil {
		cardType = validation.DetectCardType(*values.CardNumber)
	}

	return response.Success(c, "Checkout validated", fiber.Map{
		"values":       values,
		"errors":       v.Errors,
		"card_type":    cardType,
		"auto_invalid": validation.AutoInvalid(values, v),
	})
}

// Submit validates a snapshot and delegates it to the configured success
// callback. Field errors come back as a 422 with the full error map.
func (h *CheckoutHandler) Submit(c *fiber.Ctx) error {
	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	attempt, err := h.svc.Submit(c.UserContext(), req.values())
	if err != nil {
		var verr *checkout.ValidationError
		if errors.As(err, &verr) {
			return response.ValidationFailed(c, verr.Fields)
		}
		return response.ServerError(c, "Checkout submission failed")
	}

	return response.Success(c, "Checkout submitted", fiber.Map{
		"attempt_id": attempt.ID,
		"card_type":  attempt.Values.CardType,
		"last_four":  attempt.Values.LastFour(),
		"email":      attempt.Values.Email,
	})
}
