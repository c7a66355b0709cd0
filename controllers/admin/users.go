package adminController

import (
	"log"

	"github.com/gofiber/fiber/v2"
	authController "github.com/pattanan23/elearnnig-it/controllers/auth"
	"github.com/pattanan23/elearnnig-it/middleware"
	"github.com/pattanan23/elearnnig-it/models"
	"github.com/pattanan23/elearnnig-it/repository"
	adminValidator "github.com/pattanan23/elearnnig-it/validators/admin"
)

func usersView(users []models.User) []fiber.Map {
	out := make([]fiber.Map, 0, len(users))
	for i := range users {
		out = append(out, authController.UserView(&users[i]))
	}
	return out
}

func (ac *AdminController) ListUsers(c *fiber.Ctx) error {
	role := c.Locals("validatedRole").(string)

	users, err := ac.Store.ListUsers(c.UserContext(), role)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully.", usersView(users))
}

func (ac *AdminController) ListTeachers(c *fiber.Ctx) error {
	users, err := ac.Store.ListUsers(c.UserContext(), models.RoleProfessor)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Teachers fetched successfully.", usersView(users))
}

func (ac *AdminController) GetUser(c *fiber.Ctx) error {
	userID := c.Locals("validatedID").(uint)

	user, err := ac.Store.GetUser(c.UserContext(), userID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully.", authController.UserView(user))
}

func (ac *AdminController) UpdateUser(c *fiber.Ctx) error {
	userID := c.Locals("validatedID").(uint)
	reqData := c.Locals("validatedUserUpdate").(*adminValidator.UpdateUserRequest)

	user, err := ac.Store.UpdateUser(c.UserContext(), userID, repository.UserUpdate{
		FirstName: reqData.FirstName,
		LastName:  reqData.LastName,
		Email:     reqData.Email,
		StudentID: reqData.StudentID,
		Role:      reqData.Role,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	log.Printf("[ADMIN] User %d updated", userID)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User updated successfully.", authController.UserView(user))
}
