// Package response holds the JSON response helpers shared by all
// handlers.
package response

import (
	"github.com/gofiber/fiber/v2"
)

// Success sends a 200 with a message and payload.
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{
		"message": message,
		"data":    data,
	})
}

// Error sends an error status with a message.
func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// BadRequest sends a 400 with a message.
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// ServerError sends a 500 with a message.
func ServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}

// ValidationFailed sends a 422 carrying per-field error messages.
func ValidationFailed(c *fiber.Ctx, fields map[string][]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"error":  "validation failed",
		"fields": fields,
	})
}
