package adminRoutes

import (
	"github.com/gofiber/fiber/v2"
	adminController "github.com/pattanan23/elearnnig-it/controllers/admin"
	"github.com/pattanan23/elearnnig-it/validators"
	adminValidator "github.com/pattanan23/elearnnig-it/validators/admin"
)

func SetupAdminRoutes(api fiber.Router, ctrl *adminController.AdminController) {
	api.Get("/users-admin", adminValidator.ListUsers(), ctrl.ListUsers)
	api.Get("/users-admin/:id", validators.IDParam("id"), ctrl.GetUser)
	api.Put("/users-admin/:id", validators.IDParam("id"), adminValidator.UpdateUser(), ctrl.UpdateUser)

	api.Post("/subjects", adminValidator.CreateSubject(), ctrl.CreateSubject)
	api.Get("/courses-admin", ctrl.ListCourses)
	api.Get("/courses-admin/:id", validators.IDParam("id"), ctrl.GetCourse)
	api.Put("/courses-admin/:id", validators.IDParam("id"), adminValidator.UpdateCourse(), ctrl.UpdateCourse)

	api.Get("/teachers", ctrl.ListTeachers)
	api.Get("/admin/stats", ctrl.Stats)
}
