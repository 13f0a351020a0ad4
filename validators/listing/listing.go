package listingValidator

import (
	"travelapp/middleware"
	"travelapp/utils"

	"github.com/gofiber/fiber/v2"
)

type CreateListingRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
	Location    string `json:"location" validate:"required,max=200"`
	IsAvailable *bool  `json:"isAvailable"`
}

type UpdateListingRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Description *string `json:"description"`
	Location    *string `json:"location" validate:"omitempty,max=200"`
	IsAvailable *bool   `json:"isAvailable"`
}

// CreateListing validates listing creation request
func CreateListing() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateListingRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := utils.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, utils.ValidationMessages(err))
		}

		c.Locals("validatedCreateListing", reqData)
		return c.Next()
	}
}

// UpdateListing validates listing update request
func UpdateListing() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateListingRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := utils.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, utils.ValidationMessages(err))
		}

		if reqData.Title == nil && reqData.Description == nil && reqData.Location == nil && reqData.IsAvailable == nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"request": "At least one field must be provided!",
			})
		}

		c.Locals("validatedUpdateListing", reqData)
		return c.Next()
	}
}
