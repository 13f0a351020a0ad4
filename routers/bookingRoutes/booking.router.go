package bookingRoutes

import (
	bookingController "travelapp/controllers/booking"
	bookingValidator "travelapp/validators/booking"

	"github.com/gofiber/fiber/v2"
)

// SetupBookingRoutes sets up booking CRUD routes
func SetupBookingRoutes(app *fiber.App) {
	bookingGroup := app.Group("/bookings")

	bookingGroup.Post("/", bookingValidator.CreateBooking(), bookingController.CreateBooking)
	bookingGroup.Get("/", bookingController.GetBookings)
	bookingGroup.Get("/:id", bookingController.GetBooking)
	bookingGroup.Put("/:id/status", bookingValidator.UpdateBookingStatus(), bookingController.UpdateBookingStatus)
	bookingGroup.Delete("/:id", bookingController.DeleteBooking)
}
