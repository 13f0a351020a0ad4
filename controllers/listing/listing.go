package listingController

import (
	"travelapp/database"
	"travelapp/middleware"
	"travelapp/models"
	listingValidator "travelapp/validators/listing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreateListing creates a new listing
func CreateListing(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCreateListing").(*listingValidator.CreateListingRequest)

	listing := models.Listing{
		Title:       reqData.Title,
		Description: reqData.Description,
		Location:    reqData.Location,
		IsAvailable: true,
	}
	if reqData.IsAvailable != nil {
		listing.IsAvailable = *reqData.IsAvailable
	}

	if err := database.Database.Db.Create(&listing).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create listing!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Listing created successfully!", listing)
}

// GetListings returns all listings, paginated, optionally filtered by availability
func GetListings(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	available := c.Query("available") // Optional filter

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db

	query := db.Model(&models.Listing{})
	if available == "true" {
		query = query.Where("is_available = ?", true)
	} else if available == "false" {
		query = query.Where("is_available = ?", false)
	}

	var total int64
	query.Count(&total)

	var listings []models.Listing
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&listings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch listings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Listings fetched!", fiber.Map{
		"listings": listings,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetListing returns a single listing with its bookings and reviews
func GetListing(c *fiber.Ctx) error {
	listingId, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid listing id!", nil)
	}

	var listing models.Listing
	if err := database.Database.Db.Where("listing_id = ?", listingId).
		Preload("Bookings").
		Preload("Reviews").
		First(&listing).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Listing not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Listing fetched!", listing)
}

// UpdateListing updates listing fields
func UpdateListing(c *fiber.Ctx) error {
	reqData := c.Locals("validatedUpdateListing").(*listingValidator.UpdateListingRequest)

	listingId, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid listing id!", nil)
	}

	db := database.Database.Db

	var listing models.Listing
	if err := db.Where("listing_id = ?", listingId).First(&listing).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Listing not found!", nil)
	}

	if reqData.Title != nil {
		listing.Title = *reqData.Title
	}
	if reqData.Description != nil {
		listing.Description = *reqData.Description
	}
	if reqData.Location != nil {
		listing.Location = *reqData.Location
	}
	if reqData.IsAvailable != nil {
		listing.IsAvailable = *reqData.IsAvailable
	}

	if err := db.Save(&listing).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update listing!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Listing updated successfully!", listing)
}

// DeleteListing removes a listing and all of its bookings and reviews
func DeleteListing(c *fiber.Ctx) error {
	listingId, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid listing id!", nil)
	}

	db := database.Database.Db

	var listing models.Listing
	if err := db.Where("listing_id = ?", listingId).First(&listing).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Listing not found!", nil)
	}

	if err := listing.DeleteCascade(db); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete listing!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Listing deleted successfully!", nil)
}
