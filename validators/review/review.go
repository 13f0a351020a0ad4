package reviewValidator

import (
	"travelapp/middleware"
	"travelapp/utils"

	"github.com/gofiber/fiber/v2"
)

type CreateReviewRequest struct {
	GuestName string `json:"guestName" validate:"required,max=200"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

// CreateReview validates review creation request
func CreateReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateReviewRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := utils.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, utils.ValidationMessages(err))
		}

		c.Locals("validatedCreateReview", reqData)
		return c.Next()
	}
}
