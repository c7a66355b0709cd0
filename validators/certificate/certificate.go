package certificateValidator

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pattanan23/elearnnig-it/middleware"
	"github.com/pattanan23/elearnnig-it/utils"
	"github.com/pattanan23/elearnnig-it/validators"
)

type SaveCertificateRequest struct {
	UserID    uint
	CourseID  uint
	IssueDate *time.Time
}

func SaveCertificate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := new(struct {
			UserID    validators.FlexInt `json:"userId"`
			CourseID  validators.FlexInt `json:"courseId"`
			IssueDate string             `json:"issueDate"`
		})
		if err := c.BodyParser(body); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		reqData := &SaveCertificateRequest{
			UserID:   validators.RequireID(errors, "userId", body.UserID),
			CourseID: validators.RequireID(errors, "courseId", body.CourseID),
		}
		if body.IssueDate != "" {
			d, err := utils.ParseDate(body.IssueDate)
			if err != nil {
				errors["issueDate"] = "issueDate must be YYYY-MM-DD!"
			} else {
				reqData.IssueDate = &d
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCertificate", reqData)
		return c.Next()
	}
}
