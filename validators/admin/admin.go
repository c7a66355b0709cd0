package adminValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pattanan23/elearnnig-it/middleware"
	"github.com/pattanan23/elearnnig-it/validators"
)

type UpdateUserRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,min=1,max=100"`
	Email     *string `json:"email" validate:"omitempty,email,max=150"`
	StudentID *string `json:"student_id" validate:"omitempty,max=20"`
	Role      *string `json:"role" validate:"omitempty,oneof=student professor admin"`
}

type UpdateCourseRequest struct {
	CourseCode       *string `json:"course_code" validate:"omitempty,min=1,max=20"`
	CourseName       *string `json:"course_name" validate:"omitempty,max=200"`
	ShortDescription *string `json:"short_description"`
	Description      *string `json:"description"`
	Objective        *string `json:"objective"`
}

type CreateSubjectRequest struct {
	CourseCode  string `json:"course_code" validate:"required,max=20"`
	SubjectName string `json:"subject_name" validate:"required,max=200"`
}

type roleFilter struct {
	Role string `query:"role" validate:"omitempty,oneof=student professor admin"`
}

func ListUsers() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := &roleFilter{Role: c.Query("role")}
		if errors := validators.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}
		c.Locals("validatedRole", reqData.Role)
		return c.Next()
	}
}

func UpdateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateUserRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validators.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUserUpdate", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validators.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

func CreateSubject() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateSubjectRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		reqData.CourseCode = strings.TrimSpace(reqData.CourseCode)
		reqData.SubjectName = strings.TrimSpace(reqData.SubjectName)

		// Validate course code and subject name
		if errors := validators.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubject", reqData)
		return c.Next()
	}
}
