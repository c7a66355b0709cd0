package progressRoutes

import (
	"github.com/gofiber/fiber/v2"
	progressController "github.com/pattanan23/elearnnig-it/controllers/progress"
	"github.com/pattanan23/elearnnig-it/validators"
	progressValidator "github.com/pattanan23/elearnnig-it/validators/progress"
)

func SetupProgressRoutes(api fiber.Router, ctrl *progressController.ProgressController) {
	api.Post("/save_progress", progressValidator.SaveProgress(), ctrl.SaveProgress)
	api.Get("/get_progress", progressValidator.GetProgress(), ctrl.GetProgress)
	api.Get("/get_progress/:userId/:courseId", validators.UserCourseParams(), ctrl.LatestProgress)
	api.Get("/get_all_progress/:userId/:courseId", validators.UserCourseParams(), ctrl.AllProgress)
}
