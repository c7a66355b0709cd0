package progressValidator

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pattanan23/elearnnig-it/middleware"
	"github.com/pattanan23/elearnnig-it/models"
	"github.com/pattanan23/elearnnig-it/utils"
	"github.com/pattanan23/elearnnig-it/validators"
)

type SaveProgressRequest struct {
	UserID       uint
	CourseID     uint
	LessonID     uint
	SavedSeconds int
	CourseStatus string
}

type LessonKey struct {
	UserID   uint
	CourseID uint
	LessonID uint
}

func SaveProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := new(struct {
			UserID       validators.FlexInt `json:"userId"`
			CourseID     validators.FlexInt `json:"courseId"`
			LessonID     validators.FlexInt `json:"lessonId"`
			SavedSeconds validators.FlexInt `json:"savedSeconds"`
			CourseStatus string             `json:"courseStatus"`
		})
		if err := c.BodyParser(body); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		reqData := &SaveProgressRequest{
			UserID:       validators.RequireID(errors, "userId", body.UserID),
			CourseID:     validators.RequireID(errors, "courseId", body.CourseID),
			LessonID:     validators.RequireID(errors, "lessonId", body.LessonID),
			SavedSeconds: body.SavedSeconds.Value,
			CourseStatus: body.CourseStatus,
		}

		if !body.SavedSeconds.Set {
			errors["savedSeconds"] = "savedSeconds is required!"
		} else if body.SavedSeconds.Value < 0 {
			errors["savedSeconds"] = "savedSeconds must not be negative!"
		}

		switch body.CourseStatus {
		case models.StatusNew, models.StatusContinue, models.StatusComplete, models.StatusReview:
		case "":
			errors["courseStatus"] = "courseStatus is required!"
		default:
			errors["courseStatus"] = "courseStatus must be one of: new, continue, complete, review"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}

// GetProgress validates the userId, courseId and lessonId query parameters.
func GetProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)
		key := &LessonKey{}
		var ok bool

		if key.UserID, ok = utils.ParseID(c.Query("userId")); !ok {
			errors["userId"] = "Invalid User ID!"
		}
		if key.CourseID, ok = utils.ParseID(c.Query("courseId")); !ok {
			errors["courseId"] = "Invalid Course ID!"
		}
		if key.LessonID, ok = utils.ParseID(c.Query("lessonId")); !ok {
			errors["lessonId"] = "Invalid Lesson ID!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLessonKey", key)
		return c.Next()
	}
}
