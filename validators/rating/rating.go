package ratingValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pattanan23/elearnnig-it/middleware"
	"github.com/pattanan23/elearnnig-it/validators"
)

type RateCourseRequest struct {
	CourseID   uint
	UserID     uint
	Rating     int
	ReviewText *string
}

// RateCourse checks ids and the 1..5 range before anything is written.
func RateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := new(struct {
			CourseID   validators.FlexInt `json:"courseId"`
			UserID     validators.FlexInt `json:"userId"`
			Rating     validators.FlexInt `json:"rating"`
			ReviewText *string            `json:"review_text"`
		})
		if err := c.BodyParser(body); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		reqData := &RateCourseRequest{
			CourseID: validators.RequireID(errors, "courseId", body.CourseID),
			UserID:   validators.RequireID(errors, "userId", body.UserID),
			Rating:   body.Rating.Value,
		}
		if !body.Rating.Set || body.Rating.Value < 1 || body.Rating.Value > 5 {
			errors["rating"] = "Rating must be between 1 and 5!"
		}
		if body.ReviewText != nil && strings.TrimSpace(*body.ReviewText) != "" {
			reqData.ReviewText = body.ReviewText
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRating", reqData)
		return c.Next()
	}
}
