// Package routes defines the API routing configuration.
package routes

import (
	"github.com/gofiber/fiber/v2"

	"checkout/internal/handlers"
	"checkout/internal/services/checkout"
)

// SetupRoutes wires the checkout API onto the fiber app.
func SetupRoutes(app *fiber.App, svc *checkout.Service) {
	app.Get("/health", handlers.HealthCheck)

	checkoutHandler := handlers.NewCheckoutHandler(svc)

	api := app.Group("/api")
	api.Post("/checkout/validate", checkoutHandler.Validate)
	api.Post("/checkout", checkoutHandler.Submit)
}
