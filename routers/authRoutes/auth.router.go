package authRoutes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	authController "github.com/pattanan23/elearnnig-it/controllers/auth"
	"github.com/pattanan23/elearnnig-it/middleware"
	"github.com/pattanan23/elearnnig-it/validators"
	authValidator "github.com/pattanan23/elearnnig-it/validators/auth"
)

func SetupAuthRoutes(api fiber.Router, ctrl *authController.AuthController) {
	api.Post("/login", authValidator.Login(), ctrl.Login)
	api.Post("/users", authValidator.Register(), ctrl.Register)
	api.Put("/users/:id/profile", validators.IDParam("id"), authValidator.UpdateProfile(), ctrl.UpdateProfile)
	api.Put("/users/:id/password", validators.IDParam("id"), authValidator.ChangePassword(), ctrl.ChangePassword)

	passwordGroup := api.Group("/password")
	passwordGroup.Post("/request_reset", middleware.ResetRequestLimiter(5, 15*time.Minute), authValidator.RequestReset(), ctrl.RequestReset)
	passwordGroup.Post("/reset", authValidator.ResetPassword(), ctrl.ResetPassword)
}
