package ratingRoutes

import (
	"github.com/gofiber/fiber/v2"
	ratingController "github.com/pattanan23/elearnnig-it/controllers/rating"
	"github.com/pattanan23/elearnnig-it/validators"
	ratingValidator "github.com/pattanan23/elearnnig-it/validators/rating"
)

func SetupRatingRoutes(api fiber.Router, ctrl *ratingController.RatingController) {
	api.Post("/rate_course", ratingValidator.RateCourse(), ctrl.RateCourse)
	api.Get("/check_user_rating/:userId/:courseId", validators.UserCourseParams(), ctrl.CheckUserRating)
}
