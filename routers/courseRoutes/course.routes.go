package courseRoutes

import (
	"github.com/gofiber/fiber/v2"
	courseController "github.com/pattanan23/elearnnig-it/controllers/course"
	"github.com/pattanan23/elearnnig-it/validators"
	courseValidator "github.com/pattanan23/elearnnig-it/validators/course"
)

func SetupCourseRoutes(api fiber.Router, ctrl *courseController.CourseController) {
	api.Get("/subjects", ctrl.ListSubjects)
	api.Post("/courses", courseValidator.CreateCourse(), ctrl.CreateCourse)
	api.Post("/upload-video", courseValidator.UploadVideo(), ctrl.UploadVideo)
	api.Get("/show_courses", ctrl.ShowCourses)
	api.Get("/course/:courseId", validators.IDParam("courseId"), ctrl.CourseDetail)
	api.Get("/course/:courseId/videos", validators.IDParam("courseId"), ctrl.CourseVideos)
}
