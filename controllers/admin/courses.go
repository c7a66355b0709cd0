package adminController

import (
	"log"

	"github.com/gofiber/fiber/v2"
	courseController "github.com/pattanan23/elearnnig-it/controllers/course"
	"github.com/pattanan23/elearnnig-it/middleware"
	"github.com/pattanan23/elearnnig-it/repository"
	adminValidator "github.com/pattanan23/elearnnig-it/validators/admin"
)

func (ac *AdminController) ListCourses(c *fiber.Ctx) error {
	courses, err := ac.Store.ListCourses(c.UserContext())
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	base := courseController.BaseURL(c, ac.Cfg.PublicBaseURL)
	out := make([]fiber.Map, 0, len(courses))
	for i := range courses {
		out = append(out, courseController.CourseSummary(base, ac.Cfg.UploadDir, &courses[i]))
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", out)
}

func (ac *AdminController) GetCourse(c *fiber.Ctx) error {
	courseID := c.Locals("validatedID").(uint)
	ctx := c.UserContext()

	course, err := ac.Store.GetCourse(ctx, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	lessons, err := ac.Store.ListLessons(ctx, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	base := courseController.BaseURL(c, ac.Cfg.PublicBaseURL)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully.",
		courseController.CourseDetail(base, ac.Cfg.UploadDir, course, lessons))
}

func (ac *AdminController) UpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("validatedID").(uint)
	reqData := c.Locals("validatedCourseUpdate").(*adminValidator.UpdateCourseRequest)

	course, err := ac.Store.UpdateCourse(c.UserContext(), courseID, repository.CourseUpdate{
		CourseCode:       reqData.CourseCode,
		CourseName:       reqData.CourseName,
		ShortDescription: reqData.ShortDescription,
		Description:      reqData.Description,
		Objective:        reqData.Objective,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	log.Printf("[ADMIN] Course %d updated", courseID)
	base := courseController.BaseURL(c, ac.Cfg.PublicBaseURL)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully.",
		courseController.CourseSummary(base, ac.Cfg.UploadDir, course))
}

func (ac *AdminController) CreateSubject(c *fiber.Ctx) error {
	reqData := c.Locals("validatedSubject").(*adminValidator.CreateSubjectRequest)

	if err := ac.Store.CreateSubject(c.UserContext(), reqData.CourseCode, reqData.SubjectName); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	log.Printf("[ADMIN] Subject %s registered", reqData.CourseCode)
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Subject created successfully.", fiber.Map{
		"course_code":  reqData.CourseCode,
		"subject_name": reqData.SubjectName,
	})
}
