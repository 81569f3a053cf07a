package router

import (
	"booking-ops/handlers"
	"booking-ops/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/", logger.New())

	api.Get("/health", handlers.GetHealth)
	api.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	//Bookings
	bookings := api.Group("/api/bookings")
	bookings.Post("/", handlers.CreateBooking)
	bookings.Get("/", handlers.GetBookings)

	//Operator
	ops := api.Group("/api/ops")
	ops.Post("/login", handlers.Login)
	ops.Post("/pre-arrival", middleware.Authorize(), handlers.SendPreArrival)

	//Smoke tests against the live sheet and mailbox
	test := api.Group("/api/test", middleware.Authorize())
	test.Post("/email", handlers.SendTestEmail)
	test.Post("/full-booking", handlers.RunFullBookingTest)
}
