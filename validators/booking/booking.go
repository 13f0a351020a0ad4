package bookingValidator

import (
	"time"

	"travelapp/middleware"
	"travelapp/utils"

	"github.com/gofiber/fiber/v2"
)

type CreateBookingRequest struct {
	ListingID string    `json:"listingId" validate:"required,uuid"`
	GuestName string    `json:"guestName" validate:"required,max=200"`
	Status    string    `json:"status" validate:"omitempty,oneof=confirmed pending cancelled completed"`
	CheckIn   time.Time `json:"checkIn" validate:"required"`
	CheckOut  time.Time `json:"checkOut" validate:"required,gtfield=CheckIn"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed pending cancelled completed"`
}

// CreateBooking validates booking creation request
func CreateBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateBookingRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := utils.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, utils.ValidationMessages(err))
		}

		c.Locals("validatedCreateBooking", reqData)
		return c.Next()
	}
}

// UpdateBookingStatus validates booking status update request
func UpdateBookingStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateBookingStatusRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := utils.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, utils.ValidationMessages(err))
		}

		c.Locals("validatedUpdateBookingStatus", reqData)
		return c.Next()
	}
}
