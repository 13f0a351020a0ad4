package reviewRoutes

import (
	reviewController "travelapp/controllers/review"
	reviewValidator "travelapp/validators/review"

	"github.com/gofiber/fiber/v2"
)

// SetupReviewRoutes sets up review routes
func SetupReviewRoutes(app *fiber.App) {
	app.Post("/listings/:id/reviews", reviewValidator.CreateReview(), reviewController.CreateReview)
	app.Get("/listings/:id/reviews", reviewController.GetListingReviews)
	app.Delete("/reviews/:id", reviewController.DeleteReview)
}
