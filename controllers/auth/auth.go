package authController

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pattanan23/elearnnig-it/apperror"
	"github.com/pattanan23/elearnnig-it/config"
	"github.com/pattanan23/elearnnig-it/mailer"
	"github.com/pattanan23/elearnnig-it/middleware"
	"github.com/pattanan23/elearnnig-it/models"
	"github.com/pattanan23/elearnnig-it/repository"
	"github.com/pattanan23/elearnnig-it/utils"
	authValidator "github.com/pattanan23/elearnnig-it/validators/auth"
)

type AuthController struct {
	Store  *repository.Store
	Cfg    *config.Config
	Mailer mailer.Mailer
	Now    func() time.Time
}

func NewAuthController(store *repository.Store, cfg *config.Config, m mailer.Mailer) *AuthController {
	return &AuthController{Store: store, Cfg: cfg, Mailer: m, Now: time.Now}
}

// UserView is the public shape of a user. The hash never leaves the store.
func UserView(u *models.User) fiber.Map {
	return fiber.Map{
		"user_id":    u.UserID,
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"email":      u.Email,
		"student_id": u.StudentID,
		"role":       u.Role,
		"created_at": u.CreatedAt,
	}
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	reqData := c.Locals("validatedLogin").(*authValidator.LoginRequest)

	user, err := ac.Store.Authenticate(c.UserContext(), reqData.Identifier, reqData.Password)
	if apperror.Is(err, apperror.KindNotFound) {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", UserView(user))
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	reqData := c.Locals("validatedUser").(*authValidator.RegisterRequest)

	user, err := ac.Store.CreateUser(c.UserContext(), repository.NewUser{
		FirstName: reqData.FirstName,
		LastName:  reqData.LastName,
		Email:     reqData.Email,
		StudentID: reqData.StudentID,
		Password:  reqData.Password,
		Role:      reqData.Role,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User created successfully.", UserView(user))
}

func (ac *AuthController) UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("validatedID").(uint)
	reqData := c.Locals("validatedProfile").(*authValidator.ProfileRequest)

	user, err := ac.Store.UpdateUser(c.UserContext(), userID, repository.UserUpdate{
		FirstName: reqData.FirstName,
		LastName:  reqData.LastName,
		Email:     reqData.Email,
		StudentID: reqData.StudentID,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully.", UserView(user))
}

func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID := c.Locals("validatedID").(uint)
	reqData := c.Locals("validatedPassword").(*authValidator.ChangePasswordRequest)

	if err := ac.Store.ChangePassword(c.UserContext(), userID, reqData.CurrentPassword, reqData.NewPassword); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password changed successfully.", nil)
}

// RequestReset issues a new reset code and mails it. The code row stays in
// place when delivery fails; the next request supersedes it.
func (ac *AuthController) RequestReset(c *fiber.Ctx) error {
	reqData := c.Locals("validatedReset").(*authValidator.RequestResetRequest)
	ctx := c.UserContext()

	// Find User
	user, err := ac.Store.FindUserByIdentifier(ctx, reqData.Identifier)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	// Generate OTP
	code, err := utils.GenerateOTP(utils.OTPDigits)
	if err != nil {
		return middleware.ErrorResponse(c, apperror.Server(err, "Failed to generate reset code!"))
	}

	// Replace any earlier code
	expiresAt := ac.Now().Add(ac.Cfg.OTPTTL)
	if err := ac.Store.ReplaceResetCode(ctx, user.UserID, code, expiresAt); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	// Send OTP Email
	if err := ac.Mailer.Send(ctx, mailer.ResetCodeEmail(user.Email, code, ac.Cfg.OTPTTL)); err != nil {
		log.Printf("[MAIL] Reset code for user %d not delivered: %v", user.UserID, err)
		return middleware.ErrorResponse(c, apperror.Server(err, "Failed to send reset code email!"))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reset code sent to your email.", fiber.Map{
		"expires_at": expiresAt,
	})
}

func (ac *AuthController) ResetPassword(c *fiber.Ctx) error {
	reqData := c.Locals("validatedResetPassword").(*authValidator.ResetPasswordRequest)
	ctx := c.UserContext()

	user, err := ac.Store.FindUserByIdentifier(ctx, reqData.Identifier)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	// Verify OTP and set the new password
	if err := ac.Store.ConsumeResetCode(ctx, user.UserID, reqData.OTP, reqData.NewPassword, ac.Now()); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password reset successfully.", nil)
}
