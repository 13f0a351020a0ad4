package bookingController

import (
	"errors"

	"travelapp/database"
	"travelapp/middleware"
	"travelapp/models"
	bookingValidator "travelapp/validators/booking"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreateBooking creates a booking against an existing listing
func CreateBooking(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCreateBooking").(*bookingValidator.CreateBookingRequest)

	db := database.Database.Db

	// Resolve the listing by its external id
	var listing models.Listing
	if err := db.Where("listing_id = ?", reqData.ListingID).First(&listing).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Listing not found!", nil)
	}

	status := models.BookingStatusPending
	if reqData.Status != "" {
		status = models.BookingStatus(reqData.Status)
	}

	booking := models.Booking{
		ListingID: listing.ID,
		GuestName: reqData.GuestName,
		Status:    status,
		CheckIn:   reqData.CheckIn,
		CheckOut:  reqData.CheckOut,
	}

	if err := db.Create(&booking).Error; err != nil {
		if errors.Is(err, models.ErrListingRequired) || errors.Is(err, models.ErrInvalidStay) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create booking!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Booking created successfully!", booking)
}

// GetBookings returns all bookings, paginated, optionally filtered by status
func GetBookings(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	status := c.Query("status") // Optional filter

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db

	query := db.Model(&models.Booking{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var bookings []models.Booking
	if err := query.Preload("Listing").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&bookings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch bookings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bookings fetched!", fiber.Map{
		"bookings": bookings,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetBooking returns a single booking by its external id
func GetBooking(c *fiber.Ctx) error {
	bookingId, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid booking id!", nil)
	}

	var booking models.Booking
	if err := database.Database.Db.Where("booking_id = ?", bookingId).
		Preload("Listing").
		First(&booking).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Booking not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Booking fetched!", booking)
}

// UpdateBookingStatus changes a booking's status
func UpdateBookingStatus(c *fiber.Ctx) error {
	reqData := c.Locals("validatedUpdateBookingStatus").(*bookingValidator.UpdateBookingStatusRequest)

	bookingId, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid booking id!", nil)
	}

	db := database.Database.Db

	var booking models.Booking
	if err := db.Where("booking_id = ?", bookingId).First(&booking).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Booking not found!", nil)
	}

	booking.Status = models.BookingStatus(reqData.Status)
	if err := db.Save(&booking).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update booking!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Booking status updated successfully!", booking)
}

// DeleteBooking removes a booking
func DeleteBooking(c *fiber.Ctx) error {
	bookingId, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid booking id!", nil)
	}

	db := database.Database.Db

	var booking models.Booking
	if err := db.Where("booking_id = ?", bookingId).First(&booking).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Booking not found!", nil)
	}

	if err := db.Delete(&booking).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete booking!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Booking deleted successfully!", nil)
}
