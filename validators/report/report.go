package reportValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pattanan23/elearnnig-it/middleware"
	"github.com/pattanan23/elearnnig-it/validators"
)

type CreateReportRequest struct {
	UserID     uint
	Category   string `json:"category" validate:"required,max=100"`
	ReportMess string `json:"reportMess" validate:"required"`
}

type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending reviewed resolved"`
}

func CreateReport() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := new(struct {
			UserID     validators.FlexInt `json:"userId"`
			Category   string             `json:"category"`
			ReportMess string             `json:"reportMess"`
		})
		if err := c.BodyParser(body); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData := &CreateReportRequest{
			Category:   strings.TrimSpace(body.Category),
			ReportMess: strings.TrimSpace(body.ReportMess),
		}
		errors := validators.Struct(reqData)
		reqData.UserID = validators.RequireID(errors, "userId", body.UserID)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReport", reqData)
		return c.Next()
	}
}

// ListReports validates the optional status filter.
func ListReports() fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := c.Query("status")
		if status != "" {
			if errors := validators.Struct(&StatusRequest{Status: status}); len(errors) > 0 {
				return middleware.ValidationErrorResponse(c, errors)
			}
		}
		c.Locals("validatedStatus", status)
		return c.Next()
	}
}

func UpdateStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(StatusRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validators.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedStatus", reqData.Status)
		return c.Next()
	}
}
