package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkout/internal/models"
	"checkout/internal/services/checkout"
	"checkout/internal/validation"
)

var testNow = time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T, onSuccess checkout.SubmitFunc) *fiber.App {
	t.Helper()
	if onSuccess == nil {
		onSuccess = func(context.Context, models.CheckoutAttempt) error { return nil }
	}
	svc, err := checkout.NewService(checkout.Config{
		OnSuccess: onSuccess,
		Clock:     func() time.Time { return testNow },
	})
	require.NoError(t, err)

	app := fiber.New()
	h := NewCheckoutHandler(svc)
	app.Post("/api/checkout/validate", h.Validate)
	app.Post("/api/checkout", h.Submit)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (*http.Response, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return resp, payload
}

func TestCheckoutHandler_Validate(t *testing.T) {
	app := newTestApp(t, nil)

	t.Run("reports field errors and the submit gate", func(t *testing.T) {
		resp, payload := postJSON(t, app, "/api/checkout/validate", `{
			"email": "not-an-email",
			"card_number": "1234567890123456",
			"card_expire": "01 / 20",
			"cvv": "12a"
		}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		data := payload["data"].(map[string]interface{})
		assert.Equal(t, true, data["auto_invalid"])
		assert.Equal(t, string(models.CardTypeUnknown), data["card_type"])

		errs := data["errors"].(map[string]interface{})
		assert.Equal(t, []interface{}{validation.MsgInvalidEmail}, errs[validation.FieldEmail])
		assert.Equal(t, []interface{}{validation.MsgInvalidCard}, errs[validation.FieldCardNumber])
		assert.Equal(t, []interface{}{validation.MsgExpiredCard}, errs[validation.FieldCardExpire])
		assert.Equal(t, []interface{}{validation.MsgNumbersOnly}, errs[validation.FieldCVV])
	})

	t.Run("formats raw input before validating", func(t *testing.T) {
		resp, payload := postJSON(t, app, "/api/checkout/validate", `{
			"email": "jane@example.com",
			"card_number": "4242424242424242",
			"card_expire": "1299",
			"cvv": "123"
		}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		data := payload["data"].(map[string]interface{})
		assert.Equal(t, false, data["auto_invalid"])
		assert.Equal(t, string(models.CardTypeVisa), data["card_type"])

		values := data["values"].(map[string]interface{})
		assert.Equal(t, "4242 4242 4242 4242", values["card_number"])
		assert.Equal(t, "12 / 99", values["card_expire"])
	})

	t.Run("absent fields stay untouched", func(t *testing.T) {
		resp, payload := postJSON(t, app, "/api/checkout/validate", `{"email": "jane@example.com"}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		data := payload["data"].(map[string]interface{})
		assert.Equal(t, true, data["auto_invalid"])
		errs := data["errors"].(map[string]interface{})
		assert.Empty(t, errs)
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		resp, payload := postJSON(t, app, "/api/checkout/validate", `{`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Invalid request format", payload["error"])
	})
}

func TestCheckoutHandler_Submit(t *testing.T) {
	t.Run("delegates a valid checkout", func(t *testing.T) {
		var got models.CheckoutAttempt
		app := newTestApp(t, func(_ context.Context, attempt models.CheckoutAttempt) error {
			got = attempt
			return nil
		})

		resp, payload := postJSON(t, app, "/api/checkout", `{
			"email": "jane@example.com",
			"card_number": "4242 4242 4242 4242",
			"card_expire": "12 / 99",
			"cvv": "123"
		}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		data := payload["data"].(map[string]interface{})
		assert.Equal(t, got.ID, data["attempt_id"])
		assert.Equal(t, "4242", data["last_four"])
		assert.Equal(t, string(models.CardTypeVisa), data["card_type"])
		assert.Equal(t, "jane@example.com", got.Values.Email)
	})

	t.Run("invalid checkout comes back as 422", func(t *testing.T) {
		called := false
		app := newTestApp(t, func(context.Context, models.CheckoutAttempt) error {
			called = true
			return nil
		})

		resp, payload := postJSON(t, app, "/api/checkout", `{
			"email": "jane@example.com",
			"card_number": "378282246310005",
			"card_expire": "12 / 99",
			"cvv": "123"
		}`)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.False(t, called)

		fields := payload["fields"].(map[string]interface{})
		assert.Equal(t, []interface{}{validation.MsgUnsupportedCard}, fields[validation.FieldCardNumber])
	})

	t.Run("callback failure is a server error", func(t *testing.T) {
		app := newTestApp(t, func(context.Context, models.CheckoutAttempt) error {
			return assert.AnError
		})

		resp, payload := postJSON(t, app, "/api/checkout", `{
			"email": "jane@example.com",
			"card_number": "4242 4242 4242 4242",
			"card_expire": "12 / 99",
			"cvv": "123"
		}`)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "Checkout submission failed", payload["error"])
	})
}
