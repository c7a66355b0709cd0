package ratingController

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pattanan23/elearnnig-it/apperror"
	"github.com/pattanan23/elearnnig-it/middleware"
	"github.com/pattanan23/elearnnig-it/repository"
	"github.com/pattanan23/elearnnig-it/validators"
	ratingValidator "github.com/pattanan23/elearnnig-it/validators/rating"
)

type RatingController struct {
	Store *repository.Store
}

func NewRatingController(store *repository.Store) *RatingController {
	return &RatingController{Store: store}
}

// RateCourse saves the rating and sends the first lesson back to review.
func (rc *RatingController) RateCourse(c *fiber.Ctx) error {
	reqData := c.Locals("validatedRating").(*ratingValidator.RateCourseRequest)

	rating, err := rc.Store.UpsertRating(c.UserContext(), reqData.CourseID, reqData.UserID, reqData.Rating, reqData.ReviewText)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true,
		"Course rating saved and progress set for review successfully.", rating)
}

func (rc *RatingController) CheckUserRating(c *fiber.Ctx) error {
	key := c.Locals("validatedUserCourse").(*validators.UserCourse)

	rating, err := rc.Store.GetRating(c.UserContext(), key.UserID, key.CourseID)
	if apperror.Is(err, apperror.KindNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User has not rated this course yet.", nil)
	}
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User has rated this course.", fiber.Map{
		"rating":      rating.RatingValue,
		"review_text": rating.ReviewText,
	})
}
