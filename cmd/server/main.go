// Package main runs the checkout validation API.
package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"checkout/internal/config"
	"checkout/internal/models"
	"checkout/internal/routes"
	"checkout/internal/services/checkout"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// The success callback is where submission side effects belong.
	// This binary only logs the masked attempt; a deployment injects
	// its own payment flow here.
	svc, err := checkout.NewService(checkout.Config{
		OnSuccess: func(_ context.Context, attempt models.CheckoutAttempt) error {
			log.Printf("checkout %s accepted: %s %s (%s)",
				attempt.ID, attempt.Values.CardType, attempt.Values.MaskedCard(), attempt.Values.Email)
			return nil
		},
		SubmitLabel: config.GetEnv("SUBMIT_LABEL", checkout.DefaultSubmitLabel),
	})
	if err != nil {
		log.Fatalf("Failed to create checkout service: %v", err)
	}

	// Create Fiber app
	app := fiber.New()

	// CORS middleware: the form posts from the browser.
	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.GetEnv("CORS_ORIGIN", "http://localhost:5173"),
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowMethods:     "GET,POST,HEAD",
		AllowCredentials: true,
	}))

	// Middleware
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Use("/api/checkout", limiter.New(limiter.Config{
		Max:        config.GetIntEnv("CHECKOUT_RATE_LIMIT", 10),
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(429).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	}))

	// Routes
	routes.SetupRoutes(app, svc)

	// Start server
	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "3000")))
}
