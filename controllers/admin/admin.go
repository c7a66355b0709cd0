package adminController

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pattanan23/elearnnig-it/config"
	"github.com/pattanan23/elearnnig-it/middleware"
	"github.com/pattanan23/elearnnig-it/repository"
)

type AdminController struct {
	Store *repository.Store
	Cfg   *config.Config
	Now   func() time.Time
}

func NewAdminController(store *repository.Store, cfg *config.Config) *AdminController {
	return &AdminController{Store: store, Cfg: cfg, Now: time.Now}
}

func (ac *AdminController) Stats(c *fiber.Ctx) error {
	stats, err := ac.Store.DashboardStats(c.UserContext(), ac.Now())
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully.", stats)
}
