package progressController

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/pattanan23/elearnnig-it/apperror"
	"github.com/pattanan23/elearnnig-it/middleware"
	"github.com/pattanan23/elearnnig-it/models"
	"github.com/pattanan23/elearnnig-it/repository"
	"github.com/pattanan23/elearnnig-it/validators"
	progressValidator "github.com/pattanan23/elearnnig-it/validators/progress"
)

type ProgressController struct {
	Store *repository.Store
}

func NewProgressController(store *repository.Store) *ProgressController {
	return &ProgressController{Store: store}
}

func progressView(p *models.VideoProgress) fiber.Map {
	return fiber.Map{
		"userId":       p.UserID,
		"courseId":     p.CourseID,
		"lessonId":     p.LessonID,
		"savedSeconds": p.SavedSeconds,
		"courseStatus": p.CourseStatus,
		"updatedAt":    p.UpdatedAt,
	}
}

func (pc *ProgressController) SaveProgress(c *fiber.Ctx) error {
	reqData := c.Locals("validatedProgress").(*progressValidator.SaveProgressRequest)

	progress, err := pc.Store.UpsertProgress(c.UserContext(), repository.ProgressInput{
		UserID:       reqData.UserID,
		CourseID:     reqData.CourseID,
		LessonID:     reqData.LessonID,
		SavedSeconds: reqData.SavedSeconds,
		Status:       reqData.CourseStatus,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	log.Printf("[PROGRESS] User %d lesson %d: %ds %s", reqData.UserID, reqData.LessonID, reqData.SavedSeconds, reqData.CourseStatus)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video progress saved successfully.", progressView(progress))
}

// GetProgress answers 404 with zero defaults so the player starts fresh.
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	key := c.Locals("validatedLessonKey").(*progressValidator.LessonKey)

	progress, err := pc.Store.GetProgress(c.UserContext(), key.UserID, key.CourseID, key.LessonID)
	if apperror.Is(err, apperror.KindNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No progress found for this lesson.", fiber.Map{
			"savedSeconds": 0,
			"courseStatus": models.StatusNew,
		})
	}
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully.", progressView(progress))
}

func (pc *ProgressController) LatestProgress(c *fiber.Ctx) error {
	key := c.Locals("validatedUserCourse").(*validators.UserCourse)

	progress, err := pc.Store.LatestProgress(c.UserContext(), key.UserID, key.CourseID)
	if apperror.Is(err, apperror.KindNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No overall progress found for this course.", nil)
	}
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Last course progress fetched successfully.", progressView(progress))
}

func (pc *ProgressController) AllProgress(c *fiber.Ctx) error {
	key := c.Locals("validatedUserCourse").(*validators.UserCourse)

	rows, err := pc.Store.ListProgress(c.UserContext(), key.UserID, key.CourseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	out := make([]fiber.Map, 0, len(rows))
	for i := range rows {
		out = append(out, progressView(&rows[i]))
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully.", out)
}
