package reviewController

import (
	"strconv"

	"travelapp/database"
	"travelapp/middleware"
	"travelapp/models"
	reviewValidator "travelapp/validators/review"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreateReview creates a review for a listing
func CreateReview(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCreateReview").(*reviewValidator.CreateReviewRequest)

	listingId, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid listing id!", nil)
	}

	db := database.Database.Db

	var listing models.Listing
	if err := db.Where("listing_id = ?", listingId).First(&listing).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Listing not found!", nil)
	}

	review := models.Review{
		ListingID: listing.ID,
		GuestName: reqData.GuestName,
		Rating:    strconv.Itoa(reqData.Rating),
		Comment:   reqData.Comment,
	}

	if err := db.Create(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review created successfully!", review)
}

// GetListingReviews returns reviews for a listing, paginated
func GetListingReviews(c *fiber.Ctx) error {
	listingId, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid listing id!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db

	var listing models.Listing
	if err := db.Where("listing_id = ?", listingId).First(&listing).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Listing not found!", nil)
	}

	var total int64
	db.Model(&models.Review{}).Where("listing_id = ?", listing.ID).Count(&total)

	var reviews []models.Review
	if err := db.Where("listing_id = ?", listing.ID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched!", fiber.Map{
		"reviews": reviews,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// DeleteReview removes a review
func DeleteReview(c *fiber.Ctx) error {
	reviewId, err := c.ParamsInt("id")
	if err != nil || reviewId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid review id!", nil)
	}

	db := database.Database.Db

	var review models.Review
	if err := db.First(&review, reviewId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Review not found!", nil)
	}

	if err := db.Delete(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review deleted successfully!", nil)
}
