package courseValidator

import (
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pattanan23/elearnnig-it/middleware"
	"github.com/pattanan23/elearnnig-it/utils"
)

type CreateCourseRequest struct {
	CourseCode       string
	CourseName       string
	ShortDescription string
	Description      string
	Objective        string
	UserID           uint
	Image            *multipart.FileHeader
	Video            *multipart.FileHeader
	PDF              *multipart.FileHeader
}

type UploadVideoRequest struct {
	CourseID         uint
	VideoName        string
	ShortDescription string
	Video            *multipart.FileHeader
	PDF              *multipart.FileHeader
}

// formFile returns the first file under any of the given field names.
func formFile(c *fiber.Ctx, names ...string) *multipart.FileHeader {
	for _, name := range names {
		if fh, err := c.FormFile(name); err == nil {
			return fh
		}
	}
	return nil
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)

		reqData := &CreateCourseRequest{
			CourseCode:       strings.TrimSpace(c.FormValue("course_code")),
			CourseName:       strings.TrimSpace(c.FormValue("course_name")),
			ShortDescription: c.FormValue("short_description"),
			Description:      c.FormValue("description"),
			Objective:        c.FormValue("objective"),
			Image:            formFile(c, "name_image", "image"),
			Video:            formFile(c, "video"),
			PDF:              formFile(c, "pdf"),
		}

		// Validate Owner
		userID, ok := utils.ParseID(c.FormValue("user_id"))
		if !ok {
			errors["user_id"] = "User ID is required!"
		}
		reqData.UserID = userID

		// Validate Course Code
		if reqData.CourseCode == "" {
			errors["course_code"] = "Course code is required!"
		} else if len(reqData.CourseCode) > 20 {
			errors["course_code"] = "Course code must be at most 20 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UploadVideo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)

		description := c.FormValue("short_description")
		if description == "" {
			description = c.FormValue("description")
		}
		reqData := &UploadVideoRequest{
			VideoName:        strings.TrimSpace(c.FormValue("video_name")),
			ShortDescription: description,
			Video:            formFile(c, "video"),
			PDF:              formFile(c, "pdf"),
		}

		// Validate Course ID
		courseID, ok := utils.ParseID(c.FormValue("course_id"))
		if !ok {
			errors["course_id"] = "Course ID is required!"
		}
		reqData.CourseID = courseID

		if reqData.VideoName == "" {
			errors["video_name"] = "Video name is required!"
		}
		// A lesson always carries a video; the pdf is optional
		if reqData.Video == nil {
			errors["video"] = "Video file is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}
