package listingRoutes

import (
	listingController "travelapp/controllers/listing"
	listingValidator "travelapp/validators/listing"

	"github.com/gofiber/fiber/v2"
)

// SetupListingRoutes sets up listing CRUD routes
func SetupListingRoutes(app *fiber.App) {
	listingGroup := app.Group("/listings")

	listingGroup.Post("/", listingValidator.CreateListing(), listingController.CreateListing)
	listingGroup.Get("/", listingController.GetListings)
	listingGroup.Get("/:id", listingController.GetListing)
	listingGroup.Put("/:id", listingValidator.UpdateListing(), listingController.UpdateListing)
	listingGroup.Delete("/:id", listingController.DeleteListing)
}
