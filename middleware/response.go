package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/pattanan23/elearnnig-it/apperror"
)

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusBadRequest, false, "Validation failed!", errors)
}

// ErrorResponse writes err with the status of its kind. Conflicts and field
// validation errors carry the offending field in data.
func ErrorResponse(c *fiber.Ctx, err error) error {
	code := apperror.StatusOf(err)
	kind := apperror.KindServer
	var data interface{}
	if appErr, ok := apperror.As(err); ok {
		kind = appErr.Kind
		if appErr.Field != "" {
			data = fiber.Map{"field": appErr.Field}
		}
	}

	if code >= fiber.StatusInternalServerError {
		log.Printf("[ERROR] %s %s (request %v, %s): %v", c.Method(), c.Path(), c.Locals(RequestIDKey), kind, err)
	}
	return JsonResponse(c, code, false, apperror.PublicMessage(err), data)
}

// ErrorHandler renders errors that escape handlers in the same envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return JsonResponse(c, fe.Code, false, fe.Message, nil)
	}
	return ErrorResponse(c, err)
}
